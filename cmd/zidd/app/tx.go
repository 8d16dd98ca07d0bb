package app

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/x/sbt"
	"github.com/zeroid/zid/x/sigs"
)

// Tx is the transaction envelope of the zid chain. It carries exactly one
// message and the signatures authorizing it.
type Tx struct {
	Signatures []*sigs.StdSignature `json:"signatures"`

	InitializeMsg *sbt.InitializeMsg `json:"initialize_msg,omitempty"`
	MintMsg       *sbt.MintMsg       `json:"mint_msg,omitempty"`
	TransferMsg   *sbt.TransferMsg   `json:"transfer_msg,omitempty"`
}

var _ zid.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(bz []byte) (zid.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTx returns a transaction carrying the given message. It fails if the
// message cannot be sent in a zid transaction.
func NewTx(msg zid.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *sbt.InitializeMsg:
		tx.InitializeMsg = m
	case *sbt.MintMsg:
		tx.MintMsg = m
	case *sbt.TransferMsg:
		tx.TransferMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unsupported message %T", msg)
	}
	return &tx, nil
}

// GetMsg returns the single message of this transaction.
func (tx *Tx) GetMsg() (zid.Msg, error) {
	var msgs []zid.Msg
	if tx.InitializeMsg != nil {
		msgs = append(msgs, tx.InitializeMsg)
	}
	if tx.MintMsg != nil {
		msgs = append(msgs, tx.MintMsg)
	}
	if tx.TransferMsg != nil {
		msgs = append(msgs, tx.TransferMsg)
	}
	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages, only one allowed", len(msgs))
	}
}

// GetSignatures returns the signatures of this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. Signatures are not part of it.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	return zid.Marshal(tx)
}

func (tx *Tx) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, tx)
}
