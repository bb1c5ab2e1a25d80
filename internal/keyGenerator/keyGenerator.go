package keyGenerator

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

// GeneratedKey is the public identity of a newly provisioned signing key
type GeneratedKey struct {
	PublicKey ed25519.PublicKey
	Address   types.Address
	KeyId     string
}

func (gk *GeneratedKey) GetPublicKeyBytes() []byte {
	return gk.PublicKey.Bytes()
}

func (gk *GeneratedKey) GetPublicKeyHex() string {
	return gk.PublicKey.String()
}

func (gk *GeneratedKey) GetAddressHex() string {
	return gk.Address.String()
}

// IKeyGenerator provisions Ed25519 signing keys and signs with them by key ID.
// Implementations here are for development and tests; production keys are
// provisioned out of band and loaded from the keystore.
type IKeyGenerator interface {
	GenerateKey(ctx context.Context, keyName string) (*GeneratedKey, error)
	GetKeyById(ctx context.Context, keyId string) (*GeneratedKey, error)
	SignMessage(ctx context.Context, keyId string, message []byte) (ed25519.Signature, error)
}

// ErrKeyNotFound reports a lookup for a key ID this generator never issued
func ErrKeyNotFound(keyId string) error {
	return fmt.Errorf("key with ID %s not found", keyId)
}
