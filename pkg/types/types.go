package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Height is the block height a consensus instance is deciding on
type Height uint64

// Round is the consensus round within a height. RoundNil marks the
// absence of a round (e.g. no proof-of-lock round on a proposal).
type Round int32

const RoundNil Round = -1

// IsNil checks if the round is the nil round
func (r Round) IsNil() bool {
	return r == RoundNil
}

// VoteType distinguishes the two voting steps of a consensus round
type VoteType uint8

const (
	VoteTypePrevote   VoteType = 0
	VoteTypePrecommit VoteType = 1
)

func (v VoteType) String() string {
	switch v {
	case VoteTypePrevote:
		return "prevote"
	case VoteTypePrecommit:
		return "precommit"
	default:
		return "unknown"
	}
}

// ValueIDSize is the byte width of a value identifier
const ValueIDSize = 32

// ValueID identifies a proposed value by its 32-byte digest
type ValueID [ValueIDSize]byte

// NewValueID hashes raw value bytes into a ValueID
func NewValueID(value []byte) ValueID {
	return ValueID(sha256.Sum256(value))
}

// ValueIDFromBytes copies a 32-byte slice into a ValueID
func ValueIDFromBytes(data []byte) (ValueID, bool) {
	if len(data) != ValueIDSize {
		return ValueID{}, false
	}
	var id ValueID
	copy(id[:], data)
	return id, true
}

// IsEqual checks if two ValueIDs are equal
func (v ValueID) IsEqual(other ValueID) bool {
	return bytes.Equal(v[:], other[:])
}

func (v ValueID) String() string {
	return hex.EncodeToString(v[:])
}

// AddressSize is the byte width of a validator address
const AddressSize = 20

// Address identifies a consensus participant. It is derived from the
// participant's public key, not chosen freely.
type Address [AddressSize]byte

// AddressFromPublicKeyBytes derives an address as the first 20 bytes of
// the SHA-256 digest of the raw public key
func AddressFromPublicKeyBytes(pubKeyBytes []byte) Address {
	digest := sha256.Sum256(pubKeyBytes)
	var addr Address
	copy(addr[:], digest[:AddressSize])
	return addr
}

// IsEqual checks if two addresses are equal
func (a Address) IsEqual(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
