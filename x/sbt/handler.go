package sbt

import (
	"fmt"
	"strconv"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/x"
)

const (
	initializeCost = 50
	mintCost       = 100
)

// RegisterQuery registers the token, supply and issuer queries.
func RegisterQuery(qr zid.QueryRouter) {
	NewTokenBucket().Register("sbt/tokens", qr)
	qr.Register("/sbt/supply", supplyQuery{seq: TokenSequence()})
	qr.Register("/sbt/issuer", issuerQuery{})
}

// RegisterRoutes registers the handlers of all sbt messages.
func RegisterRoutes(r zid.Registry, auth x.Authenticator) {
	ledger := NewLedger(auth)
	r.Handle(&InitializeMsg{}, &initializeHandler{})
	r.Handle(&MintMsg{}, &mintHandler{ledger: ledger})
	r.Handle(&TransferMsg{}, transferHandler{})
}

type initializeHandler struct {
	issuers IssuerRegistry
}

var _ zid.Handler = (*initializeHandler)(nil)

func (h *initializeHandler) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	if _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &zid.CheckResult{GasAllocated: initializeCost}, nil
}

func (h *initializeHandler) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	msg, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.issuers.Initialize(db, msg.Issuer); err != nil {
		return nil, err
	}
	zid.GetLogger(ctx).Info("issuer initialized", "issuer", msg.Issuer)
	return &zid.DeliverResult{}, nil
}

func (h *initializeHandler) validate(db zid.KVStore, tx zid.Tx) (*InitializeMsg, error) {
	var msg InitializeMsg
	if err := zid.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	switch issuer, err := h.issuers.Issuer(db); {
	case err != nil:
		return nil, err
	case len(issuer) != 0:
		return nil, errors.Wrap(ErrDuplicateInitialization, "issuer is immutable")
	}
	return &msg, nil
}

type mintHandler struct {
	ledger *Ledger
}

var _ zid.Handler = (*mintHandler)(nil)

func (h *mintHandler) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	if _, err := h.authorize(ctx, db, tx); err != nil {
		return nil, err
	}
	return &zid.CheckResult{GasAllocated: mintCost}, nil
}

// Deliver returns the new token id as 8 bytes big endian in the result data.
func (h *mintHandler) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	msg, err := h.authorize(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ledger.Mint(ctx, db, msg.Recipient, msg.MetadataURI)
	if err != nil {
		return nil, err
	}
	zid.GetLogger(ctx).Info("token minted", "id", id, "owner", msg.Recipient)
	return &zid.DeliverResult{
		Data: TokenKey(id),
		Log:  fmt.Sprintf("token %d minted", id),
		Tags: []common.KVPair{
			{Key: []byte("sbt.token"), Value: []byte(strconv.FormatUint(id, 10))},
			{Key: []byte("sbt.owner"), Value: []byte(msg.Recipient.String())},
		},
	}, nil
}

// authorize checks the caller before the message content.
func (h *mintHandler) authorize(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*MintMsg, error) {
	raw, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	msg, ok := raw.(*MintMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "want %T, got %T", msg, raw)
	}
	issuer, err := h.ledger.Issuer(db)
	if err != nil {
		return nil, err
	}
	if err := RequireIssuer(ctx, h.ledger.auth, issuer); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	return msg, nil
}

// transferHandler refuses every transfer before the message is even
// decoded.
type transferHandler struct{}

var _ zid.Handler = transferHandler{}

func (transferHandler) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	return nil, errors.Wrap(ErrTransferDisabled, "tokens are not transferable")
}

func (transferHandler) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	return nil, errors.Wrap(ErrTransferDisabled, "tokens are not transferable")
}
