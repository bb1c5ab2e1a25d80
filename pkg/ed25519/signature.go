package ed25519

import (
	"encoding/hex"
	"fmt"
)

// SignatureSize is the byte width of an encoded signature
const SignatureSize = 64

// Signature is a fixed-width Ed25519 signature value. Copyable and
// comparable; the bytes are opaque until a verify call is made against them.
type Signature [SignatureSize]byte

// Bytes returns the 64-byte encoding of the signature
func (sig Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out, sig[:])
	return out
}

// Equal checks if two signatures are identical
func (sig Signature) Equal(other Signature) bool {
	return sig == other
}

func (sig Signature) String() string {
	return hex.EncodeToString(sig[:])
}

// InvalidSignatureLengthError reports signature bytes of the wrong width.
// It is the only structural check the codec performs; byte content is not
// inspected until verification.
type InvalidSignatureLengthError struct {
	Length int
}

func (e *InvalidSignatureLengthError) Error() string {
	return fmt.Sprintf("invalid signature length: expected %d, got %d", SignatureSize, e.Length)
}

// EncodeSignature returns the fixed 64-byte encoding of sig. It is total:
// every signature value encodes.
func EncodeSignature(sig Signature) []byte {
	return sig.Bytes()
}

// DecodeSignature parses signature bytes received from the network. Inputs
// that are not exactly 64 bytes fail with *InvalidSignatureLengthError.
func DecodeSignature(data []byte) (Signature, error) {
	if len(data) != SignatureSize {
		return Signature{}, &InvalidSignatureLengthError{Length: len(data)}
	}
	var sig Signature
	copy(sig[:], data)
	return sig, nil
}

// Scheme is the signing-scheme capability handed to the consensus engine:
// a fixed signature width plus the codec for moving signatures on and off
// the wire.
type Scheme struct{}

// SignatureSize returns the fixed signature byte width
func (Scheme) SignatureSize() int {
	return SignatureSize
}

// EncodeSignature encodes sig into exactly SignatureSize bytes
func (Scheme) EncodeSignature(sig Signature) []byte {
	return EncodeSignature(sig)
}

// DecodeSignature decodes signature bytes, rejecting malformed lengths
func (Scheme) DecodeSignature(data []byte) (Signature, error) {
	return DecodeSignature(data)
}
