package sbt

import (
	"math"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/orm"
	"github.com/zeroid/zid/x"
)

// Ledger owns the token counter and records.
type Ledger struct {
	auth    x.Authenticator
	issuers IssuerRegistry
	tokens  TokenBucket
	seq     orm.Sequence
}

// NewLedger returns a ledger that authorizes mints with the given
// authenticator.
func NewLedger(auth x.Authenticator) *Ledger {
	return &Ledger{
		auth:   auth,
		tokens: NewTokenBucket(),
		seq:    TokenSequence(),
	}
}

// Mint creates a new token owned by recipient and returns its id. Only the
// issuer can mint. Either both the token and the counter are written or
// nothing is.
func (l *Ledger) Mint(ctx zid.Context, db zid.KVStore, recipient zid.Address, metadataURI string) (uint64, error) {
	issuer, err := l.issuers.Issuer(db)
	if err != nil {
		return 0, err
	}
	if err := RequireIssuer(ctx, l.auth, issuer); err != nil {
		return 0, err
	}

	token := Token{Owner: recipient, MetadataURI: metadataURI}
	if err := token.Validate(); err != nil {
		return 0, errors.Wrap(err, "token")
	}
	conf, err := loadConfiguration(db)
	if err != nil {
		return 0, err
	}
	if n := len(metadataURI); n > int(conf.MaxMetadataURILength) {
		return 0, errors.Field("MetadataURI", errors.ErrInput,
			"too long: %d > %d", n, conf.MaxMetadataURILength)
	}

	supply, err := l.seq.Latest(db)
	if err != nil {
		return 0, err
	}
	if supply == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "token id")
	}
	id := supply + 1

	// The counter is written last so that a failed record write leaves it
	// untouched.
	if err := l.tokens.Create(db, TokenKey(id), &token); err != nil {
		return 0, errors.Wrapf(err, "token %d", id)
	}
	if err := l.seq.Set(db, id); err != nil {
		return 0, err
	}
	return id, nil
}

// Token returns the record of the given id. It fails with ErrTokenNotFound
// for 0, for ids above the total supply and for ids without a record.
func (l *Ledger) Token(db zid.ReadOnlyKVStore, id uint64) (*Token, error) {
	if id == 0 {
		return nil, errors.Wrap(ErrTokenNotFound, "id 0")
	}
	supply, err := l.seq.Latest(db)
	if err != nil {
		return nil, err
	}
	if id > supply {
		return nil, errors.Wrapf(ErrTokenNotFound, "id %d above supply %d", id, supply)
	}
	var token Token
	switch err := l.tokens.One(db, TokenKey(id), &token); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrTokenNotFound, "id %d", id)
	case err != nil:
		return nil, err
	}
	return &token, nil
}

// OwnerOf returns the owner of the token.
func (l *Ledger) OwnerOf(db zid.ReadOnlyKVStore, id uint64) (zid.Address, error) {
	t, err := l.Token(db, id)
	if err != nil {
		return nil, err
	}
	return t.Owner, nil
}

// MetadataOf returns the metadata reference of the token.
func (l *Ledger) MetadataOf(db zid.ReadOnlyKVStore, id uint64) (string, error) {
	t, err := l.Token(db, id)
	if err != nil {
		return "", err
	}
	return t.MetadataURI, nil
}

// TotalSupply returns the number of minted tokens, which is also the
// highest token id.
func (l *Ledger) TotalSupply(db zid.ReadOnlyKVStore) (uint64, error) {
	return l.seq.Latest(db)
}

// Issuer returns the registered issuer, or nil if there is none.
func (l *Ledger) Issuer(db zid.ReadOnlyKVStore) (zid.Address, error) {
	return l.issuers.Issuer(db)
}

// Transfer always fails with ErrTransferDisabled. Tokens cannot change
// owner. Nothing is read or written.
func (l *Ledger) Transfer(ctx zid.Context, db zid.KVStore, id uint64, to zid.Address) error {
	return errors.Wrapf(ErrTransferDisabled, "token %d is not transferable", id)
}

// supplyQuery returns the number of minted tokens as 8 bytes big endian.
type supplyQuery struct {
	seq orm.Sequence
}

func (q supplyQuery) Query(db zid.ReadOnlyKVStore, mod string, _ []byte) ([]zid.Model, error) {
	if mod != zid.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	supply, err := q.seq.Latest(db)
	if err != nil {
		return nil, err
	}
	return []zid.Model{zid.Pair([]byte("supply"), orm.EncodeSequence(supply))}, nil
}
