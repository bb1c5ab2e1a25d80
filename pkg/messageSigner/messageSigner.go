// Package messageSigner defines the trust boundary of the consensus engine:
// every vote and proposal that influences agreement is authenticated through
// an IMessageSigner.
package messageSigner

import (
	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

// SignedVote pairs a vote with a signature claiming authorship. Envelopes can
// be built from untrusted network input; callers must verify explicitly
// before extending trust.
type SignedVote struct {
	Vote      *types.Vote
	Signature ed25519.Signature
}

// SignedProposal pairs a proposal with its signature
type SignedProposal struct {
	Proposal  *types.Proposal
	Signature ed25519.Signature
}

// SignedProposalPart pairs a proposal fragment with its signature
type SignedProposalPart struct {
	ProposalPart *types.ProposalPart
	Signature    ed25519.Signature
}

// SignedVoteExtension pairs an opaque vote-extension payload with its
// signature. The payload is signed as-is, with no canonical wrapping.
type SignedVoteExtension struct {
	Extension []byte
	Signature ed25519.Signature
}

// IMessageSigner produces and checks signatures on consensus messages on
// behalf of one protocol participant. Sign methods use the signer's own key;
// verify methods check a claimed signer's public key and report any
// cryptographic mismatch as false, never as an error.
type IMessageSigner interface {
	SignVote(vote *types.Vote) (*SignedVote, error)
	VerifySignedVote(vote *types.Vote, signature ed25519.Signature, publicKey ed25519.PublicKey) bool

	SignProposal(proposal *types.Proposal) (*SignedProposal, error)
	VerifySignedProposal(proposal *types.Proposal, signature ed25519.Signature, publicKey ed25519.PublicKey) bool

	SignProposalPart(part *types.ProposalPart) (*SignedProposalPart, error)
	VerifySignedProposalPart(part *types.ProposalPart, signature ed25519.Signature, publicKey ed25519.PublicKey) bool

	SignVoteExtension(extension []byte) (*SignedVoteExtension, error)
	VerifySignedVoteExtension(extension []byte, signature ed25519.Signature, publicKey ed25519.PublicKey) bool

	// Sign and Verify are the raw primitive operations, with no
	// message-specific encoding step.
	Sign(data []byte) (ed25519.Signature, error)
	Verify(data []byte, signature ed25519.Signature, publicKey ed25519.PublicKey) bool

	PublicKey() ed25519.PublicKey
}
