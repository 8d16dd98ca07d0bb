package zidtest

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// Tx hands a single message to the handler or decorator under test. When Err
// is set, reading the message fails with it instead.
type Tx struct {
	Msg zid.Msg
	Err error
}

var _ zid.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (zid.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal returns the serialized message. There is no envelope around it.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "no message")
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "test transactions are built, not decoded")
}

// Msg routes to RoutePath. Its serialized form is Serialized, and Err fails
// validation and both codec directions.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ zid.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = append([]byte(nil), raw...)
	return nil
}
