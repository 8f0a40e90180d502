package keygen

import (
	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
)

// round4 gathers the Schnorr proofs, verifies each against the decommitted
// (A_j, X_j) under the rid-bound challenge, and assembles the key share.
func (s *state) round4() (*LocalPartySaveData, error) {
	s.tracer.RoundBegins()

	proofs, err := s.collect(msgTypeRound3)
	if err != nil {
		return nil, err
	}

	s.tracer.Stage("Validate schnorr proofs")
	var challengeErr error
	blame := collectBlame(proofs, func(j uint16, e *envelope) bool {
		challenge, err := schnorrChallenge(s.curve, s.cfg.SessionID, j, s.rid)
		if err != nil {
			challengeErr = err
			return false
		}
		d := s.decommitments.slots[j].msg.Round2
		return !e.msg.Round3.SchProof.Verify(s.curve, d.SchCommit, challenge, d.X)
	})
	if challengeErr != nil {
		return nil, &BugError{Reason: "deriving peer challenge", Err: challengeErr}
	}
	if len(blame) > 0 {
		return nil, &AbortError{Reason: AbortInvalidSchnorrProof, Culprits: blame}
	}

	s.tracer.Stage("Assemble key share")
	publicShares := make([]curves.Point, s.cfg.PartyCount)
	publicKey := s.curve.Identity()
	s.eachDecommitment(func(j uint16, d *MsgRound2) {
		publicShares[j] = d.X
		publicKey = publicKey.Add(d.X)
	})
	if publicKey.IsIdentity() {
		return nil, &BugError{Reason: "joint public key is the identity"}
	}

	share := &LocalPartySaveData{
		PartyIndex:   s.cfg.PartyIndex,
		PartyCount:   s.cfg.PartyCount,
		CurveName:    s.curve.Name(),
		PublicKey:    publicKey,
		PublicShares: publicShares,
		Xi:           s.xi,
		ChainCode:    s.chainCode,
	}
	if err := share.Validate(s.curve); err != nil {
		return nil, &BugError{Reason: "invalid key share", Err: err}
	}
	return share, nil
}
