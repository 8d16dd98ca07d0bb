package zid

import (
	"reflect"

	"github.com/zeroid/zid/errors"
)

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as this almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Validater is any struct that can be validated. Not the same as a Validator,
// which votes on blocks.
type Validater interface {
	Validate() error
}

// Msg is a message for the ledger to take an action. It is just the request
// and must be validated by the handler. All authentication information is in
// the wrapping Tx.
type Msg interface {
	Persistent
	Validater

	// Path returns the message path, used by the router to locate the
	// proper handler.
	//
	// Must be alphanumeric with `/` and `_` separators.
	Path() string
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message along with the information needed to authenticate the
// sender.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if there is no
// message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message represented by given transaction into given
// destination. The message is validated before being returned.
//
// Destination must be a pointer of the same type as the message held by the
// transaction.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}

	src := reflect.ValueOf(msg)
	switch {
	case src.Type() == dest.Type():
		dest.Elem().Set(src.Elem())
	case src.Type() == dest.Type().Elem():
		dest.Elem().Set(src)
	default:
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	return nil
}
