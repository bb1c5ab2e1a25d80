// Package canonical produces the signable byte representation of consensus
// messages. The layouts here are frozen: every implementation that wants its
// signatures to validate against ours must reproduce them byte for byte.
//
// All integers are big-endian. Variable-length fields carry a uint32 length
// prefix. Each structured message starts with a one-byte domain tag so that
// the sign bytes of different message kinds can never collide. Encoding is a
// total function of the message's logical content: no timestamps, no field
// reordering, no fallible serialization step.
package canonical

import (
	"bytes"
	"encoding/binary"

	"github.com/Layr-Labs/bft-signing-go/pkg/types"
)

// Domain tags. These values are part of the wire contract and must never be
// reused or renumbered.
const (
	TagVote         byte = 0x01
	TagProposal     byte = 0x02
	TagProposalPart byte = 0x03
)

const (
	valueAbsent  byte = 0x00
	valuePresent byte = 0x01
)

// VoteSignBytes returns the canonical sign payload of a vote:
//
//	tag || height u64 || round i32 || voteType u8 || valuePresent u8 || valueID? [32] || voter [20]
func VoteSignBytes(vote *types.Vote) []byte {
	var buf bytes.Buffer
	buf.WriteByte(TagVote)
	writeUint64(&buf, uint64(vote.Height))
	writeInt32(&buf, int32(vote.Round))
	buf.WriteByte(byte(vote.Type))
	if vote.Value == nil {
		buf.WriteByte(valueAbsent)
	} else {
		buf.WriteByte(valuePresent)
		buf.Write(vote.Value[:])
	}
	buf.Write(vote.Voter[:])
	return buf.Bytes()
}

// ProposalSignBytes returns the canonical sign payload of a proposal:
//
//	tag || height u64 || round i32 || len(value) u32 || value || polRound i32 || proposer [20]
func ProposalSignBytes(proposal *types.Proposal) []byte {
	var buf bytes.Buffer
	buf.WriteByte(TagProposal)
	writeUint64(&buf, uint64(proposal.Height))
	writeInt32(&buf, int32(proposal.Round))
	writeBytes(&buf, proposal.Value)
	writeInt32(&buf, int32(proposal.POLRound))
	buf.Write(proposal.Proposer[:])
	return buf.Bytes()
}

// ProposalPartSignBytes returns the canonical sign payload of a proposal part:
//
//	tag || height u64 || round i32 || sequence u32 || len(content) u32 || content
func ProposalPartSignBytes(part *types.ProposalPart) []byte {
	var buf bytes.Buffer
	buf.WriteByte(TagProposalPart)
	writeUint64(&buf, uint64(part.Height))
	writeInt32(&buf, int32(part.Round))
	writeUint32(&buf, part.Sequence)
	writeBytes(&buf, part.Content)
	return buf.Bytes()
}

// Vote extensions have no canonical wrapper: the extension payload itself is
// the signable byte sequence, so no encoder is defined for them here.

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeInt32(buf *bytes.Buffer, v int32) {
	writeUint32(buf, uint32(v))
}

func writeBytes(buf *bytes.Buffer, data []byte) {
	writeUint32(buf, uint32(len(data)))
	buf.Write(data)
}
