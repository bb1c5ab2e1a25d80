package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
)

func Test_SaveLoad(t *testing.T) {
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "signer.json")
	keyId, err := Save(path, priv, "correct horse battery staple", "node-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(keyId, "signer-key-"))

	t.Run("round trips the private key", func(t *testing.T) {
		restored, err := Load(path, "correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, priv.PublicKey().Equal(restored.PublicKey()))

		sig, err := restored.Sign([]byte("payload"))
		require.NoError(t, err)
		assert.True(t, priv.PublicKey().Verify([]byte("payload"), sig))
	})

	t.Run("wrong passphrase fails", func(t *testing.T) {
		_, err := Load(path, "wrong passphrase")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wrong passphrase or corrupt file")
	})

	t.Run("file is owner-only", func(t *testing.T) {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("envelope exposes the public identity without the passphrase", func(t *testing.T) {
		file, err := ReadKeyFile(path)
		require.NoError(t, err)
		assert.Equal(t, keyId, file.KeyId)
		assert.Equal(t, "node-1", file.KeyName)
		assert.Equal(t, priv.PublicKey().String(), file.PublicKey)
		assert.Equal(t, "scrypt", file.Crypto.KDF)
	})
}

func Test_Load_Failures(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.json"), "pw")
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
		_, err := Load(path, "pw")
		assert.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := filepath.Join(dir, "badversion.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 99}`), 0o600))
		_, err := Load(path, "pw")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported key file version")
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		priv, err := ed25519.GeneratePrivateKey()
		require.NoError(t, err)

		path := filepath.Join(dir, "tampered.json")
		_, err = Save(path, priv, "pw", "")
		require.NoError(t, err)

		file, err := ReadKeyFile(path)
		require.NoError(t, err)

		// Flip one hex digit of the ciphertext and write the file back.
		ct := []byte(file.Crypto.Ciphertext)
		if ct[0] == '0' {
			ct[0] = '1'
		} else {
			ct[0] = '0'
		}
		file.Crypto.Ciphertext = string(ct)
		data, err := json.Marshal(file)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		_, err = Load(path, "pw")
		assert.Error(t, err)
	})
}
