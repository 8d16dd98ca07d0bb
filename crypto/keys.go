package crypto

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures.
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key. No serializing is
// required so that hardware devices can be supported as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// PrivateKey is an ed25519 private key, including the public part.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ zid.Persistent = (*PublicKey)(nil)

func (p *PublicKey) Marshal() ([]byte, error) {
	return zid.Marshal(p)
}

func (p *PublicKey) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, p)
}

// Validate ensures the key is of the expected size.
func (p *PublicKey) Validate() error {
	if p == nil || len(p.Ed25519) == 0 {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "public key length %d", len(p.Ed25519))
	}
	return nil
}

// Verify verifies the signature was created with this message and public
// key.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if sig == nil || len(sig.Ed25519) != ed25519.SignatureSize {
		return false
	}
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a condition. An empty key has no
// condition.
func (p *PublicKey) Condition() zid.Condition {
	if len(p.Ed25519) == 0 {
		return nil
	}
	return zid.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address returns the address of the condition of this key.
func (p *PublicKey) Address() zid.Address {
	return p.Condition().Address()
}

var _ Signer = (*PrivateKey)(nil)

func (p *PrivateKey) Marshal() ([]byte, error) {
	return zid.Marshal(p)
}

func (p *PrivateKey) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, p)
}

// Sign returns a matching signature for this private key.
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "private key length %d", len(p.Ed25519))
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: bz}, nil
}

// PublicKey returns the corresponding public key.
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

func (s *Signature) Marshal() ([]byte, error) {
	return zid.Marshal(s)
}

func (s *Signature) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, s)
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed deterministically generates a private key from a
// given seed. Use if you have a strong source of external randomness, or for
// deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
