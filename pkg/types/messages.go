package types

// Vote is a single validator's prevote or precommit for a round.
// A nil Value votes for no value (the validator saw nothing it could accept).
type Vote struct {
	Height Height
	Round  Round
	Type   VoteType
	Value  *ValueID // nil for a nil-vote
	Voter  Address
}

// Proposal carries a full proposed value for a round. POLRound is the
// proof-of-lock round, RoundNil when the proposer is not re-proposing a
// previously locked value.
type Proposal struct {
	Height   Height
	Round    Round
	Value    []byte
	POLRound Round
	Proposer Address
}

// ProposalPart is one fragment of a proposal streamed part by part.
// Sequence orders the fragments within a (height, round).
type ProposalPart struct {
	Height   Height
	Round    Round
	Sequence uint32
	Content  []byte
}
