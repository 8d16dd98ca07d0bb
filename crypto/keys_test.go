package crypto

import (
	"bytes"
	"testing"

	"github.com/zeroid/zid/zidtest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()
	assert.Nil(t, public.Validate())

	msg := []byte("mint")
	msg2 := []byte("transfer")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)

	bz, err := sig.Marshal()
	assert.Nil(t, err)
	bz2, err := sig2.Marshal()
	assert.Nil(t, err)
	if bytes.Equal(bz, bz2) {
		t.Fatal("different signatures serialize to the same bytes")
	}

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this key")
	}
	if public.Verify(msg, sig2) {
		t.Fatal("verified the signature of another message")
	}
	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature")
	}

	other := GenPrivKeyEd25519().PublicKey()
	if other.Verify(msg, sig) {
		t.Fatal("verified a signature with another key")
	}
}

func TestEd25519Condition(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()
	empty := PublicKey{}

	assert.Nil(t, pub.Condition().Validate())
	if pub.Condition().Equals(pub2.Condition()) {
		t.Fatal("different keys produce the same condition")
	}
	assert.Nil(t, empty.Condition())
	assert.Nil(t, empty.Address())
	if err := empty.Validate(); err == nil {
		t.Fatal("empty key must not be valid")
	}

	bz, err := pub.Marshal()
	assert.Nil(t, err)
	var read PublicKey
	assert.Nil(t, read.Unmarshal(bz))
	assert.Equal(t, pub.Condition(), read.Condition())
	assert.Equal(t, pub.Address(), read.Address())
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.Ed25519, b.Ed25519)

	bz, err := a.Marshal()
	assert.Nil(t, err)
	var read PrivateKey
	assert.Nil(t, read.Unmarshal(bz))
	assert.Equal(t, a.PublicKey().Address(), read.PublicKey().Address())
}

func TestSignWithInvalidKey(t *testing.T) {
	var k PrivateKey
	if _, err := k.Sign([]byte("x")); err == nil {
		t.Fatal("signing with an empty key must fail")
	}
}
