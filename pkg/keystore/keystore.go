// Package keystore persists Ed25519 signing keys at rest. Key files are JSON
// envelopes holding the private key encrypted with a passphrase-derived
// secretbox key; the private key bytes never touch disk unencrypted.
package keystore

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
)

const (
	// FileVersion is the current key file format version
	FileVersion = 1

	// scrypt parameters for the passphrase KDF
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1

	saltSize  = 32
	nonceSize = 24
	keySize   = 32

	fileMode = 0o600
)

// CryptoParams records how the private key material was encrypted
type CryptoParams struct {
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"`
	N          int    `json:"n"`
	R          int    `json:"r"`
	P          int    `json:"p"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// KeyFile is the on-disk JSON envelope for one signing key
type KeyFile struct {
	Version   int          `json:"version"`
	KeyId     string       `json:"keyId"`
	KeyName   string       `json:"keyName,omitempty"`
	PublicKey string       `json:"publicKey"`
	Crypto    CryptoParams `json:"crypto"`
}

// Save encrypts privateKey under passphrase and writes it to path with owner-only
// permissions. It returns the generated key ID.
func Save(path string, privateKey *ed25519.PrivateKey, passphrase string, keyName string) (string, error) {
	privBytes, err := privateKey.Bytes()
	if err != nil {
		return "", errors.Wrap(err, "failed to encode private key")
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	boxKey, err := deriveKey(passphrase, salt)
	if err != nil {
		return "", err
	}
	ciphertext := secretbox.Seal(nil, privBytes, &nonce, boxKey)

	keyId := "signer-key-" + uuid.New().String()
	file := &KeyFile{
		Version:   FileVersion,
		KeyId:     keyId,
		KeyName:   keyName,
		PublicKey: privateKey.PublicKey().String(),
		Crypto: CryptoParams{
			KDF:        "scrypt",
			Salt:       hex.EncodeToString(salt),
			N:          scryptN,
			R:          scryptR,
			P:          scryptP,
			Nonce:      hex.EncodeToString(nonce[:]),
			Ciphertext: hex.EncodeToString(ciphertext),
		},
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal key file")
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return "", errors.Wrapf(err, "failed to write key file %s", path)
	}
	return keyId, nil
}

// Load reads a key file from path and decrypts the private key with
// passphrase. A wrong passphrase or tampered ciphertext fails decryption.
func Load(path string, passphrase string) (*ed25519.PrivateKey, error) {
	file, err := ReadKeyFile(path)
	if err != nil {
		return nil, err
	}
	if file.Crypto.KDF != "scrypt" {
		return nil, errors.Errorf("unsupported kdf %q in key file %s", file.Crypto.KDF, path)
	}

	salt, err := hex.DecodeString(file.Crypto.Salt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode salt")
	}
	nonceBytes, err := hex.DecodeString(file.Crypto.Nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode nonce")
	}
	if len(nonceBytes) != nonceSize {
		return nil, errors.Errorf("invalid nonce length: expected %d, got %d", nonceSize, len(nonceBytes))
	}
	ciphertext, err := hex.DecodeString(file.Crypto.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode ciphertext")
	}

	boxKey, err := deriveKeyWithParams(passphrase, salt, file.Crypto.N, file.Crypto.R, file.Crypto.P)
	if err != nil {
		return nil, err
	}
	var nonce [nonceSize]byte
	copy(nonce[:], nonceBytes)

	privBytes, ok := secretbox.Open(nil, ciphertext, &nonce, boxKey)
	if !ok {
		return nil, errors.Errorf("failed to decrypt key file %s: wrong passphrase or corrupt file", path)
	}

	privateKey, err := ed25519.PrivateKeyFromBytes(privBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reconstruct private key")
	}
	return privateKey, nil
}

// ReadKeyFile parses the JSON envelope without decrypting it, for callers
// that only need the public identity
func ReadKeyFile(path string) (*KeyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key file %s", path)
	}
	file := &KeyFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse key file %s", path)
	}
	if file.Version != FileVersion {
		return nil, errors.Errorf("unsupported key file version %d", file.Version)
	}
	return file, nil
}

func deriveKey(passphrase string, salt []byte) (*[keySize]byte, error) {
	return deriveKeyWithParams(passphrase, salt, scryptN, scryptR, scryptP)
}

func deriveKeyWithParams(passphrase string, salt []byte, n, r, p int) (*[keySize]byte, error) {
	derived, err := scrypt.Key([]byte(passphrase), salt, n, r, p, keySize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive encryption key")
	}
	key := new([keySize]byte)
	copy(key[:], derived)
	return key, nil
}
