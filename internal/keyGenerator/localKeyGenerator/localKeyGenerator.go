package localKeyGenerator

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Layr-Labs/bft-signing-go/internal/keyGenerator"
	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

// keyEntry stores the private key and metadata for one generated key
type keyEntry struct {
	privateKey *ed25519.PrivateKey
	keyName    string
	address    types.Address
}

type LocalKeyGenerator struct {
	logger   *zap.Logger
	keyStore map[string]*keyEntry // keyId -> keyEntry
	mu       sync.RWMutex         // protect concurrent access to keyStore
}

func NewLocalKeyGenerator(logger *zap.Logger) *LocalKeyGenerator {
	return &LocalKeyGenerator{
		logger:   logger,
		keyStore: make(map[string]*keyEntry),
	}
}

func (l *LocalKeyGenerator) GenerateKey(ctx context.Context, keyName string) (*keyGenerator.GeneratedKey, error) {
	privateKey, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key: %w", err)
	}

	address := privateKey.PublicKey().Address()
	keyId := fmt.Sprintf("local-key-%s", uuid.New().String())

	l.mu.Lock()
	l.keyStore[keyId] = &keyEntry{
		privateKey: privateKey,
		keyName:    keyName,
		address:    address,
	}
	l.mu.Unlock()

	l.logger.Info("Generated local ed25519 key",
		zap.String("keyName", keyName),
		zap.String("keyId", keyId),
		zap.String("address", address.String()),
	)

	return &keyGenerator.GeneratedKey{
		PublicKey: privateKey.PublicKey(),
		Address:   address,
		KeyId:     keyId,
	}, nil
}

func (l *LocalKeyGenerator) GetKeyById(ctx context.Context, keyId string) (*keyGenerator.GeneratedKey, error) {
	l.mu.RLock()
	entry, exists := l.keyStore[keyId]
	l.mu.RUnlock()

	if !exists {
		return nil, keyGenerator.ErrKeyNotFound(keyId)
	}

	l.logger.Debug("Retrieved ed25519 key by ID",
		zap.String("keyId", keyId),
		zap.String("address", entry.address.String()),
	)

	return &keyGenerator.GeneratedKey{
		PublicKey: entry.privateKey.PublicKey(),
		Address:   entry.address,
		KeyId:     keyId,
	}, nil
}

func (l *LocalKeyGenerator) SignMessage(ctx context.Context, keyId string, message []byte) (ed25519.Signature, error) {
	l.mu.RLock()
	entry, exists := l.keyStore[keyId]
	l.mu.RUnlock()

	if !exists {
		return ed25519.Signature{}, keyGenerator.ErrKeyNotFound(keyId)
	}

	signature, err := entry.privateKey.Sign(message)
	if err != nil {
		return ed25519.Signature{}, fmt.Errorf("failed to sign message: %w", err)
	}

	l.logger.Debug("Signed message with local key",
		zap.String("keyId", keyId),
		zap.Int("messageBytes", len(message)),
	)

	return signature, nil
}

var _ keyGenerator.IKeyGenerator = (*LocalKeyGenerator)(nil)
