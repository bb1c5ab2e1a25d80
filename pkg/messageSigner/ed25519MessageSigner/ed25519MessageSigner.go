package ed25519MessageSigner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Layr-Labs/bft-signing-go/pkg/canonical"
	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
	"github.com/Layr-Labs/bft-signing-go/pkg/messageSigner"
	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

// Ed25519MessageSigner signs and verifies consensus messages with a single
// Ed25519 key. It holds no other state: every operation is a pure function of
// the key and its input, so one instance may be shared across concurrent
// callers.
type Ed25519MessageSigner struct {
	logger     *zap.Logger
	privateKey *ed25519.PrivateKey
}

// NewEd25519MessageSigner creates a signer around an existing private key.
// This is the production construction path.
func NewEd25519MessageSigner(privateKey *ed25519.PrivateKey, logger *zap.Logger) *Ed25519MessageSigner {
	return &Ed25519MessageSigner{
		logger:     logger,
		privateKey: privateKey,
	}
}

// NewTestEd25519MessageSigner creates a signer with a freshly generated
// random key. Test and development use only: nothing signed by it carries
// authenticity beyond the current process.
func NewTestEd25519MessageSigner(logger *zap.Logger) (*Ed25519MessageSigner, error) {
	privateKey, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return NewEd25519MessageSigner(privateKey, logger), nil
}

// PublicKey returns the public key other participants use to verify this
// signer's messages
func (ms *Ed25519MessageSigner) PublicKey() ed25519.PublicKey {
	return ms.privateKey.PublicKey()
}

// Address returns the consensus address of this signer's key
func (ms *Ed25519MessageSigner) Address() types.Address {
	return ms.privateKey.PublicKey().Address()
}

// Sign signs raw bytes with the signer's private key
func (ms *Ed25519MessageSigner) Sign(data []byte) (ed25519.Signature, error) {
	return ms.privateKey.Sign(data)
}

// Verify checks a signature over raw bytes against a claimed public key
func (ms *Ed25519MessageSigner) Verify(data []byte, signature ed25519.Signature, publicKey ed25519.PublicKey) bool {
	ok := publicKey.Verify(data, signature)
	if !ok {
		ms.logger.Debug("signature verification failed",
			zap.String("publicKey", publicKey.String()),
			zap.Int("payloadBytes", len(data)),
		)
	}
	return ok
}

// SignVote signs the canonical bytes of a vote
func (ms *Ed25519MessageSigner) SignVote(vote *types.Vote) (*messageSigner.SignedVote, error) {
	signature, err := ms.Sign(canonical.VoteSignBytes(vote))
	if err != nil {
		return nil, fmt.Errorf("failed to sign vote: %w", err)
	}
	return &messageSigner.SignedVote{Vote: vote, Signature: signature}, nil
}

// VerifySignedVote recomputes the vote's canonical bytes and checks the
// signature against the claimed voter key
func (ms *Ed25519MessageSigner) VerifySignedVote(vote *types.Vote, signature ed25519.Signature, publicKey ed25519.PublicKey) bool {
	return ms.Verify(canonical.VoteSignBytes(vote), signature, publicKey)
}

// SignProposal signs the canonical bytes of a proposal
func (ms *Ed25519MessageSigner) SignProposal(proposal *types.Proposal) (*messageSigner.SignedProposal, error) {
	signature, err := ms.Sign(canonical.ProposalSignBytes(proposal))
	if err != nil {
		return nil, fmt.Errorf("failed to sign proposal: %w", err)
	}
	return &messageSigner.SignedProposal{Proposal: proposal, Signature: signature}, nil
}

// VerifySignedProposal recomputes the proposal's canonical bytes and checks
// the signature against the claimed proposer key
func (ms *Ed25519MessageSigner) VerifySignedProposal(proposal *types.Proposal, signature ed25519.Signature, publicKey ed25519.PublicKey) bool {
	return ms.Verify(canonical.ProposalSignBytes(proposal), signature, publicKey)
}

// SignProposalPart signs the canonical bytes of a proposal fragment
func (ms *Ed25519MessageSigner) SignProposalPart(part *types.ProposalPart) (*messageSigner.SignedProposalPart, error) {
	signature, err := ms.Sign(canonical.ProposalPartSignBytes(part))
	if err != nil {
		return nil, fmt.Errorf("failed to sign proposal part: %w", err)
	}
	return &messageSigner.SignedProposalPart{ProposalPart: part, Signature: signature}, nil
}

// VerifySignedProposalPart recomputes the fragment's canonical bytes and
// checks the signature against the claimed proposer key
func (ms *Ed25519MessageSigner) VerifySignedProposalPart(part *types.ProposalPart, signature ed25519.Signature, publicKey ed25519.PublicKey) bool {
	return ms.Verify(canonical.ProposalPartSignBytes(part), signature, publicKey)
}

// SignVoteExtension signs a vote-extension payload. The payload is the
// signable byte sequence itself; no canonical wrapping is applied.
func (ms *Ed25519MessageSigner) SignVoteExtension(extension []byte) (*messageSigner.SignedVoteExtension, error) {
	signature, err := ms.Sign(extension)
	if err != nil {
		return nil, fmt.Errorf("failed to sign vote extension: %w", err)
	}
	return &messageSigner.SignedVoteExtension{Extension: extension, Signature: signature}, nil
}

// VerifySignedVoteExtension checks a vote-extension signature over the raw
// payload bytes
func (ms *Ed25519MessageSigner) VerifySignedVoteExtension(extension []byte, signature ed25519.Signature, publicKey ed25519.PublicKey) bool {
	return ms.Verify(extension, signature, publicKey)
}

var _ messageSigner.IMessageSigner = (*Ed25519MessageSigner)(nil)
