package orm

import (
	"encoding/binary"
	"math"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// Sequence maintains a counter. Each value is greater than the last, both
// as an integer and when comparing the big endian bytes.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter stored under the key
//
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	return Sequence{
		id: []byte("_s." + bucket + ":" + name),
	}
}

// NextVal increments the sequence and returns the new value, both as an
// integer and as 8 big endian bytes. It fails with ErrOverflow instead of
// wrapping around.
func (s Sequence) NextVal(db zid.KVStore) (uint64, []byte, error) {
	val, err := s.Latest(db)
	if err != nil {
		return 0, nil, err
	}
	if val == math.MaxUint64 {
		return 0, nil, errors.Wrapf(errors.ErrOverflow, "sequence %s", s.id)
	}
	val++
	raw := EncodeSequence(val)
	if err := db.Set(s.id, raw); err != nil {
		return 0, nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return val, raw, nil
}

// Latest returns the last value handed out, or 0 if NextVal was never
// called. It does not modify the sequence state.
func (s Sequence) Latest(db zid.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	val, err := DecodeSequence(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "sequence %s", s.id)
	}
	return val, nil
}

// Set overwrites the counter value.
func (s Sequence) Set(db zid.KVStore, val uint64) error {
	if err := db.Set(s.id, EncodeSequence(val)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// DecodeSequence reads a stored sequence value. A missing value is 0.
func DecodeSequence(bz []byte) (uint64, error) {
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "invalid sequence length %d", len(bz))
	}
	return binary.BigEndian.Uint64(bz), nil
}

// EncodeSequence returns the 8 byte big endian form of the value.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}
