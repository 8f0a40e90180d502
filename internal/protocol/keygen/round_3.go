package keygen

import (
	"github.com/NillionNetwork/cggmp21/internal/crypto/commitment"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
)

// round3 gathers the decommitments, verifies them against the round 1
// commitments, aggregates rid and the chain code, and broadcasts the
// Schnorr proof of knowledge of x_i.
func (s *state) round3() error {
	s.tracer.RoundBegins()

	box, err := s.collect(msgTypeRound2)
	if err != nil {
		return err
	}
	s.decommitments = box

	s.tracer.Stage("Validate decommitments")
	blame := collectBlame(box, func(j uint16, e *envelope) bool {
		expected := hashCommitment(s.cfg.SessionID, j, e.msg.Round2)
		return !commitment.Equal(s.commitments.slots[j].msg.Round1.Commitment, expected)
	})
	if len(blame) > 0 {
		return &AbortError{Reason: AbortInvalidDecommitment, Culprits: blame}
	}

	if s.cfg.HDEnabled {
		s.tracer.Stage("Calculate chain_code")
		blame := collectBlame(box, func(j uint16, e *envelope) bool {
			return e.msg.Round2.ChainCode == nil
		})
		if len(blame) > 0 {
			return &AbortError{Reason: AbortMissingChainCode, Culprits: blame}
		}
		cc := make([]byte, ChainCodeSize)
		s.eachDecommitment(func(j uint16, d *MsgRound2) {
			xorBytes(cc, d.ChainCode)
		})
		s.chainCode = cc
	}

	s.tracer.Stage("Calculate challenge rid")
	rid := make([]byte, SecurityBytes)
	s.eachDecommitment(func(j uint16, d *MsgRound2) {
		xorBytes(rid, d.RID)
	})
	s.rid = rid

	challenge, err := schnorrChallenge(s.curve, s.cfg.SessionID, s.cfg.PartyIndex, rid)
	if err != nil {
		return &BugError{Reason: "deriving own challenge", Err: err}
	}

	s.tracer.Stage("Prove knowledge of x_i")
	proof := schnorr.Prove(s.schSecret, challenge, s.xi)

	if err := s.send(&Msg{Round3: &MsgRound3{SchProof: proof}}); err != nil {
		return err
	}

	// The ephemeral is spent once the proof is out.
	s.schSecret.Zeroize()
	return nil
}
