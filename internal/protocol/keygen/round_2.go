package keygen

import (
	"github.com/NillionNetwork/cggmp21/internal/crypto/commitment"
)

// round2 gathers the peer commitments, runs the optional echo subround and
// reveals the own decommitment.
func (s *state) round2() error {
	s.tracer.RoundBegins()

	box, err := s.collect(msgTypeRound1)
	if err != nil {
		return err
	}
	s.commitments = box

	if s.cfg.ReliableBroadcast {
		s.tracer.Stage("Hash received msgs (reliability check)")
		ordered := make([][]byte, s.cfg.PartyCount)
		for j := uint16(0); j < s.cfg.PartyCount; j++ {
			if j == s.cfg.PartyIndex {
				ordered[j] = s.myCommitment.Commitment
				continue
			}
			ordered[j] = box.slots[j].msg.Round1.Commitment
		}
		hi := echoHash(s.cfg.SessionID, ordered)

		if err := s.send(&Msg{ReliabilityCheck: &MsgReliabilityCheck{Hash: hi}}); err != nil {
			return err
		}

		s.tracer.RoundBegins()
		echoes, err := s.collect(msgTypeReliabilityCheck)
		if err != nil {
			return err
		}

		s.tracer.Stage("Assert other parties hashed messages (reliability check)")
		blame := collectBlame(echoes, func(j uint16, e *envelope) bool {
			return !commitment.Equal(e.msg.ReliabilityCheck.Hash, hi)
		})
		if len(blame) > 0 {
			return &AbortError{Reason: AbortRound1NotReliable, Culprits: blame}
		}
	}

	return s.send(&Msg{Round2: s.myDecommitment})
}
