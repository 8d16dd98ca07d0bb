package sbt

import (
	"unicode"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/orm"
)

const (
	tokenBucketName = "sbttoken"

	// MaxMetadataURILength is the longest metadata reference, in bytes, a
	// token can hold.
	MaxMetadataURILength = 2048
)

// Issuer holds the only address allowed to mint.
type Issuer struct {
	Address zid.Address `json:"address"`
}

var _ orm.Model = (*Issuer)(nil)

func (i *Issuer) Marshal() ([]byte, error) {
	return zid.Marshal(i)
}

func (i *Issuer) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, i)
}

func (i *Issuer) Validate() error {
	return errors.AppendField(nil, "Address", i.Address.Validate())
}

// Token binds an owner to a metadata reference.
type Token struct {
	Owner       zid.Address `json:"owner"`
	MetadataURI string      `json:"metadata_uri"`
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Marshal() ([]byte, error) {
	return zid.Marshal(t)
}

func (t *Token) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, t)
}

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	errs = errors.AppendField(errs, "MetadataURI", validateMetadataURI(t.MetadataURI))
	return errs
}

func validateMetadataURI(uri string) error {
	switch n := len(uri); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "required")
	case n > MaxMetadataURILength:
		return errors.Wrapf(errors.ErrInput, "too long: %d > %d", n, MaxMetadataURILength)
	}
	for _, r := range uri {
		if unicode.IsControl(r) {
			return errors.Wrapf(errors.ErrInput, "control character %U", r)
		}
	}
	return nil
}

// TokenBucket stores tokens keyed by the big endian encoded id.
type TokenBucket struct {
	orm.ModelBucket
}

// NewTokenBucket returns a bucket for Token records.
func NewTokenBucket() TokenBucket {
	return TokenBucket{
		ModelBucket: orm.NewModelBucket(tokenBucketName, &Token{}),
	}
}

// TokenSequence counts minted tokens. Its value is the highest token id.
func TokenSequence() orm.Sequence {
	return orm.NewSequence(tokenBucketName, "id")
}

// TokenKey returns the store key of the token with the given id.
func TokenKey(id uint64) []byte {
	return orm.EncodeSequence(id)
}
