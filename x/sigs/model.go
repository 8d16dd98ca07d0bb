package sigs

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/crypto"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/orm"
)

// BucketName is where we store the signer accounts.
const BucketName = "sigs"

// UserData keeps the nonce of a signer.
type UserData struct {
	Pubkey   *crypto.PublicKey `json:"pubkey"`
	Sequence int64             `json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Marshal() ([]byte, error) {
	return zid.Marshal(u)
}

func (u *UserData) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, u)
}

func (u *UserData) Validate() error {
	var errs error
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	if u.Pubkey == nil {
		errs = errors.Append(errs, errors.Field("Pubkey", errors.ErrEmpty, "required"))
	} else {
		errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	}
	return errs
}

// maxSequenceValue is the greatest nonce a javascript client can represent
// (Number.MAX_SAFE_INTEGER).
const maxSequenceValue = (1 << 53) - 1

// CheckAndIncrementSequence increments the sequence if it equals the
// expected value. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", u.Sequence, expected)
	}
	next := u.Sequence + 1
	if next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores UserData keyed by the signer address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &UserData{}),
	}
}

// GetOrCreate loads the user for the given key, or initializes a new one
// with sequence 0 if none exists.
func (b Bucket) GetOrCreate(db zid.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var u UserData
	err := b.One(db, pubkey.Address(), &u)
	switch {
	case err == nil:
		return &u, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// RegisterQuery registers the signer bucket as "/auth".
func RegisterQuery(qr zid.QueryRouter) {
	NewBucket().Register("auth", qr)
}
