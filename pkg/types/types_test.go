package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Round(t *testing.T) {
	assert.True(t, RoundNil.IsNil())
	assert.False(t, Round(0).IsNil())
	assert.False(t, Round(7).IsNil())
}

func Test_VoteType_String(t *testing.T) {
	assert.Equal(t, "prevote", VoteTypePrevote.String())
	assert.Equal(t, "precommit", VoteTypePrecommit.String())
	assert.Equal(t, "unknown", VoteType(9).String())
}

func Test_ValueID(t *testing.T) {
	t.Run("hashing is deterministic", func(t *testing.T) {
		assert.True(t, NewValueID([]byte("block-A")).IsEqual(NewValueID([]byte("block-A"))))
		assert.False(t, NewValueID([]byte("block-A")).IsEqual(NewValueID([]byte("block-B"))))
	})

	t.Run("from bytes requires exactly 32", func(t *testing.T) {
		id := NewValueID([]byte("block-A"))
		restored, ok := ValueIDFromBytes(id[:])
		require.True(t, ok)
		assert.True(t, id.IsEqual(restored))

		_, ok = ValueIDFromBytes(id[:31])
		assert.False(t, ok)
		_, ok = ValueIDFromBytes(append(id[:], 0x00))
		assert.False(t, ok)
	})

	t.Run("string is 64 hex chars", func(t *testing.T) {
		assert.Len(t, NewValueID([]byte("x")).String(), 64)
	})
}

func Test_Address(t *testing.T) {
	pubKey := make([]byte, 32)
	for i := range pubKey {
		pubKey[i] = byte(i)
	}

	addr := AddressFromPublicKeyBytes(pubKey)

	t.Run("derivation is deterministic", func(t *testing.T) {
		assert.True(t, addr.IsEqual(AddressFromPublicKeyBytes(pubKey)))
	})

	t.Run("different keys give different addresses", func(t *testing.T) {
		other := append([]byte{}, pubKey...)
		other[0] ^= 0xff
		assert.False(t, addr.IsEqual(AddressFromPublicKeyBytes(other)))
	})

	t.Run("string is 40 hex chars", func(t *testing.T) {
		assert.Len(t, addr.String(), 40)
	})
}
