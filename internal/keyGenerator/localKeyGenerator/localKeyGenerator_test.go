package localKeyGenerator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/bft-signing-go/pkg/logger"
)

func setup() (*LocalKeyGenerator, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{
		Debug: true,
	})
	if err != nil {
		return nil, err
	}

	generator := NewLocalKeyGenerator(l)
	return generator, nil
}

func Test_LocalKeyGenerator(t *testing.T) {
	generator, err := setup()
	if err != nil {
		t.Fatalf("Failed to setup test: %v", err)
	}

	t.Run("Should create a new LocalKeyGenerator", func(t *testing.T) {
		assert.NotNil(t, generator)
		assert.NotNil(t, generator.logger)
	})

	t.Run("Should generate ed25519 key successfully", func(t *testing.T) {
		ctx := context.Background()

		result, err := generator.GenerateKey(ctx, "test-key-1")
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.NotEmpty(t, result.GetPublicKeyBytes())
		assert.NotEmpty(t, result.KeyId)

		// Verify the key ID format
		assert.True(t, strings.HasPrefix(result.KeyId, "local-key-"))

		// Address is hex of 20 bytes
		assert.Equal(t, 40, len(result.GetAddressHex()))
	})

	t.Run("Should retrieve a generated key by ID", func(t *testing.T) {
		ctx := context.Background()

		created, err := generator.GenerateKey(ctx, "test-key-2")
		require.NoError(t, err)

		fetched, err := generator.GetKeyById(ctx, created.KeyId)
		require.NoError(t, err)
		assert.Equal(t, created.PublicKey, fetched.PublicKey)
		assert.Equal(t, created.Address, fetched.Address)
	})

	t.Run("Should fail to retrieve an unknown key", func(t *testing.T) {
		ctx := context.Background()

		_, err := generator.GetKeyById(ctx, "local-key-does-not-exist")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should sign with a stored key", func(t *testing.T) {
		ctx := context.Background()

		created, err := generator.GenerateKey(ctx, "test-key-3")
		require.NoError(t, err)

		message := []byte("message to sign")
		signature, err := generator.SignMessage(ctx, created.KeyId, message)
		require.NoError(t, err)

		assert.True(t, created.PublicKey.Verify(message, signature))
	})

	t.Run("Should fail to sign with an unknown key", func(t *testing.T) {
		ctx := context.Background()

		_, err := generator.SignMessage(ctx, "local-key-does-not-exist", []byte("message"))
		require.Error(t, err)
	})
}
