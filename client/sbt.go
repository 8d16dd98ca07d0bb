package client

import (
	"context"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/crypto"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/orm"
	"github.com/zeroid/zid/x/sbt"
	"github.com/zeroid/zid/x/sigs"
)

// Issuer returns the address allowed to mint. It fails with ErrNotFound if
// the chain has no issuer yet.
func (c *Client) Issuer(ctx context.Context) (zid.Address, error) {
	var issuer sbt.Issuer
	switch ok, err := c.queryOne(ctx, "/sbt/issuer", nil, &issuer); {
	case err != nil:
		return nil, err
	case !ok:
		return nil, errors.Wrap(errors.ErrNotFound, "issuer not initialized")
	}
	return issuer.Address, nil
}

// TotalSupply returns the number of minted tokens.
func (c *Client) TotalSupply(ctx context.Context) (uint64, error) {
	models, err := c.Query(ctx, "/sbt/supply", nil)
	if err != nil {
		return 0, err
	}
	if len(models) == 0 {
		return 0, nil
	}
	return orm.DecodeSequence(models[0].Value)
}

// Token returns the token with the given id. It fails with
// sbt.ErrTokenNotFound if there is no such token.
func (c *Client) Token(ctx context.Context, id uint64) (*sbt.Token, error) {
	if id == 0 {
		return nil, errors.Wrap(sbt.ErrTokenNotFound, "id 0")
	}
	var token sbt.Token
	switch ok, err := c.queryOne(ctx, "/sbt/tokens", sbt.TokenKey(id), &token); {
	case err != nil:
		return nil, err
	case !ok:
		return nil, errors.Wrapf(sbt.ErrTokenNotFound, "id %d", id)
	}
	return &token, nil
}

// OwnerOf returns the owner of the token with the given id.
func (c *Client) OwnerOf(ctx context.Context, id uint64) (zid.Address, error) {
	t, err := c.Token(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.Owner, nil
}

// MetadataOf returns the metadata reference of the token with the given id.
func (c *Client) MetadataOf(ctx context.Context, id uint64) (string, error) {
	t, err := c.Token(ctx, id)
	if err != nil {
		return "", err
	}
	return t.MetadataURI, nil
}

// NextNonce returns the nonce the next signature of the given address must
// use.
func (c *Client) NextNonce(ctx context.Context, signer zid.Address) (int64, error) {
	var user sigs.UserData
	switch ok, err := c.queryOne(ctx, "/auth", signer, &user); {
	case err != nil:
		return 0, err
	case !ok:
		return 0, nil
	}
	return user.Sequence, nil
}

// SignTx signs the transaction with the current nonce of the key owner. The
// returned signature must be attached to the transaction before it is
// committed.
func (c *Client) SignTx(ctx context.Context, tx sigs.SignedTx, key crypto.Signer) (*sigs.StdSignature, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return nil, err
	}
	nonce, err := c.NextNonce(ctx, key.PublicKey().Address())
	if err != nil {
		return nil, errors.Wrap(err, "nonce")
	}
	return sigs.SignTx(key, tx, status.ChainID, nonce)
}

// MintResult is the outcome of a successful mint.
type MintResult struct {
	*CommitResult
	TokenID uint64
}

// ParseMintResult reads the id of the token created by a mint transaction.
func ParseMintResult(res *CommitResult) (*MintResult, error) {
	id, err := orm.DecodeSequence(res.Result.Data)
	if err != nil {
		return nil, errors.Wrap(err, "token id")
	}
	if id == 0 {
		return nil, errors.Wrap(errors.ErrState, "no token id in the result")
	}
	return &MintResult{CommitResult: res, TokenID: id}, nil
}
