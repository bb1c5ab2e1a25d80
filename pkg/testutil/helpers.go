package testutil

import (
	"testing"

	"github.com/Layr-Labs/bft-signing-go/pkg/ed25519"
	"github.com/Layr-Labs/bft-signing-go/pkg/logger"
	"github.com/Layr-Labs/bft-signing-go/pkg/messageSigner/ed25519MessageSigner"
	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

// CreateTestSigner builds a message signer with a fresh random key
func CreateTestSigner(t *testing.T) *ed25519MessageSigner.Ed25519MessageSigner {
	t.Helper()
	signer, err := ed25519MessageSigner.NewTestEd25519MessageSigner(logger.NewNopLogger())
	if err != nil {
		t.Fatalf("Failed to create test signer: %v", err)
	}
	return signer
}

// CreateTestPrivateKey generates a fresh Ed25519 private key
func CreateTestPrivateKey(t *testing.T) *ed25519.PrivateKey {
	t.Helper()
	privateKey, err := ed25519.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("Failed to generate private key: %v", err)
	}
	return privateKey
}

// CreateTestVote builds a precommit for the given height and round, voting
// for the digest of value and attributed to voter
func CreateTestVote(height types.Height, round types.Round, value []byte, voter types.Address) *types.Vote {
	valueID := types.NewValueID(value)
	return &types.Vote{
		Height: height,
		Round:  round,
		Type:   types.VoteTypePrecommit,
		Value:  &valueID,
		Voter:  voter,
	}
}

// CreateTestNilVote builds a prevote for no value
func CreateTestNilVote(height types.Height, round types.Round, voter types.Address) *types.Vote {
	return &types.Vote{
		Height: height,
		Round:  round,
		Type:   types.VoteTypePrevote,
		Value:  nil,
		Voter:  voter,
	}
}

// CreateTestProposal builds a proposal with no proof-of-lock round
func CreateTestProposal(height types.Height, round types.Round, value []byte, proposer types.Address) *types.Proposal {
	return &types.Proposal{
		Height:   height,
		Round:    round,
		Value:    value,
		POLRound: types.RoundNil,
		Proposer: proposer,
	}
}

// CreateTestProposalPart builds one proposal fragment
func CreateTestProposalPart(height types.Height, round types.Round, sequence uint32, content []byte) *types.ProposalPart {
	return &types.ProposalPart{
		Height:   height,
		Round:    round,
		Sequence: sequence,
		Content:  content,
	}
}
