// Package ed25519 is the signature scheme used to authenticate consensus
// messages. Keys and signatures follow the standard Ed25519 encodings:
// 32-byte public keys, 64-byte signatures, and 64-byte private keys laid out
// as seed || public (the SUPERCOP ref10 representation).
package ed25519

import (
	"encoding/hex"
	"fmt"

	"go.dedis.ch/kyber/v3/group/edwards25519"
	"go.dedis.ch/kyber/v3/sign/eddsa"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

const (
	// PublicKeySize is the byte width of an encoded public key
	PublicKeySize = 32
	// PrivateKeySize is the byte width of an encoded private key (seed || public)
	PrivateKeySize = 64
)

var group = new(edwards25519.Curve)

// PublicKey is an encoded Ed25519 public key. It is a plain value: copyable,
// comparable, and safe to share between verifiers.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes copies a 32-byte encoding into a PublicKey
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("invalid public key length: expected %d, got %d", PublicKeySize, len(data))
	}
	var pub PublicKey
	copy(pub[:], data)
	return pub, nil
}

// Verify checks sig against msg under this public key. It returns false for
// any cryptographic mismatch, including an unparseable public key; a bad
// signature is an expected outcome, never an error.
func (pub PublicKey) Verify(msg []byte, sig Signature) bool {
	point := group.Point()
	if err := point.UnmarshalBinary(pub[:]); err != nil {
		return false
	}
	return eddsa.Verify(point, msg, sig[:]) == nil
}

// Bytes returns the 32-byte encoding of the public key
func (pub PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, pub[:])
	return out
}

// Equal checks if two public keys are the same key
func (pub PublicKey) Equal(other PublicKey) bool {
	return pub == other
}

// Address derives the consensus address of this key
func (pub PublicKey) Address() types.Address {
	return types.AddressFromPublicKeyBytes(pub[:])
}

func (pub PublicKey) String() string {
	return hex.EncodeToString(pub[:])
}

// PrivateKey holds the secret signing material. It is owned by exactly one
// signer and is never serialized by this package; key-at-rest handling lives
// in the keystore.
type PrivateKey struct {
	key *eddsa.EdDSA
	pub PublicKey
}

// GeneratePrivateKey creates a fresh private key from the process-wide
// cryptographically secure random source. This is the test/dev provisioning
// path; production keys arrive through PrivateKeyFromBytes.
func GeneratePrivateKey() (*PrivateKey, error) {
	return newPrivateKey(eddsa.NewEdDSA(random.New()))
}

// PrivateKeyFromBytes reconstructs a private key from its 64-byte
// seed || public encoding
func PrivateKeyFromBytes(data []byte) (*PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: expected %d, got %d", PrivateKeySize, len(data))
	}
	key := &eddsa.EdDSA{}
	if err := key.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal private key: %w", err)
	}
	return newPrivateKey(key)
}

func newPrivateKey(key *eddsa.EdDSA) (*PrivateKey, error) {
	pubBytes, err := key.Public.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	pub, err := PublicKeyFromBytes(pubBytes)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key, pub: pub}, nil
}

// Sign produces an Ed25519 signature over msg
func (priv *PrivateKey) Sign(msg []byte) (Signature, error) {
	sigBytes, err := priv.key.Sign(msg)
	if err != nil {
		return Signature{}, fmt.Errorf("failed to sign message: %w", err)
	}
	return DecodeSignature(sigBytes)
}

// PublicKey returns the public key derived from this private key
func (priv *PrivateKey) PublicKey() PublicKey {
	return priv.pub
}

// Bytes returns the 64-byte seed || public encoding of the private key.
// Callers are responsible for keeping the result secret.
func (priv *PrivateKey) Bytes() ([]byte, error) {
	data, err := priv.key.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return data, nil
}
