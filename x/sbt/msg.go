package sbt

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

const (
	pathInitializeMsg = "sbt/initialize"
	pathMintMsg       = "sbt/mint"
	pathTransferMsg   = "sbt/transfer"
)

// InitializeMsg registers the issuer. It succeeds only once.
type InitializeMsg struct {
	Issuer zid.Address `json:"issuer"`
}

var _ zid.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

func (m *InitializeMsg) Validate() error {
	return errors.AppendField(nil, "Issuer", m.Issuer.Validate())
}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return zid.Marshal(m)
}

func (m *InitializeMsg) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, m)
}

// MintMsg creates a new token. It must be signed by the issuer.
type MintMsg struct {
	Recipient   zid.Address `json:"recipient"`
	MetadataURI string      `json:"metadata_uri"`
}

var _ zid.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	errs = errors.AppendField(errs, "MetadataURI", validateMetadataURI(m.MetadataURI))
	return errs
}

func (m *MintMsg) Marshal() ([]byte, error) {
	return zid.Marshal(m)
}

func (m *MintMsg) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, m)
}

// TransferMsg requests a change of owner. It is always rejected.
type TransferMsg struct {
	TokenID   uint64      `json:"token_id"`
	Recipient zid.Address `json:"recipient"`
}

var _ zid.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

// Validate accepts any content. Transfers are refused by the handler.
func (m *TransferMsg) Validate() error {
	return nil
}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return zid.Marshal(m)
}

func (m *TransferMsg) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, m)
}
