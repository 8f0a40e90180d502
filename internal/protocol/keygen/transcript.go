package keygen

import (
	"github.com/NillionNetwork/cggmp21/internal/crypto/commitment"
	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/hashrng"
)

// commitmentSize is the width of V_i and of the echo hash.
const commitmentSize = commitment.Size

// Domain tags. These are part of the wire format: an independent
// implementation must reproduce the transcripts byte for byte.
const (
	tagCommit    = "cggmp21.keygen.non_threshold.commit"
	tagEcho      = "cggmp21.keygen.non_threshold.echo"
	tagChallenge = "cggmp21.keygen.non_threshold.challenge"
)

// hashCommitment computes V_j, the commitment of party j to its
// decommitment payload, index-bound so commitments cannot be replayed
// across parties or sessions.
func hashCommitment(sid []byte, j uint16, d *MsgRound2) []byte {
	t := commitment.NewTagged(tagCommit)
	t.AppendBytes(sid)
	t.AppendUint16(j)
	t.AppendBytes(d.RID)
	t.AppendBytes(d.X.Bytes())
	t.AppendBytes(d.SchCommit.A.Bytes())
	t.AppendOptionalBytes(d.ChainCode)
	t.AppendBytes(d.Decommit)
	return t.Sum()
}

// echoHash digests the full ordered round 1 vector. Two parties that saw
// the same commitments in the same order compute the same hash.
func echoHash(sid []byte, commitments [][]byte) []byte {
	t := commitment.NewTagged(tagEcho)
	t.AppendBytes(sid)
	t.AppendUint16(uint16(len(commitments)))
	for _, c := range commitments {
		t.AppendBytes(c)
	}
	return t.Sum()
}

// schnorrChallenge derives party j's proof challenge from the aggregated
// rid. The seed digest is expanded through a deterministic stream and
// reduced with the curve's uniform sampling, so every party that agrees on
// (sid, j, rid) derives the same scalar.
func schnorrChallenge(curve curves.Curve, sid []byte, j uint16, rid []byte) (curves.Scalar, error) {
	t := commitment.NewTagged(tagChallenge)
	t.AppendBytes(sid)
	t.AppendUint16(j)
	t.AppendBytes(rid)
	return curve.RandomScalar(hashrng.New(t.Sum()))
}
