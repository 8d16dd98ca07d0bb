package zidtest

import (
	"encoding/binary"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/crypto"
)

// NewKey returns a new random private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a new random key.
func NewCondition() zid.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns the binary form of a token id, as used in store keys.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// ParseAddress is a test helper around zid.ParseAddress.
func ParseAddress(t testing.TB, encoded string) zid.Address {
	t.Helper()

	addr, err := zid.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encoded, err)
	}
	return addr
}
