package keygen

import (
	"io"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
)

// round1 samples the local secrets, commits to the public payload and
// broadcasts the commitment.
func (s *state) round1() error {
	s.tracer.RoundBegins()

	s.tracer.Stage("Sample x_i, rid_i, chain_code")
	xi, err := s.sampleNonZeroScalar()
	if err != nil {
		return &BugError{Reason: "sampling secret share", Err: err}
	}
	s.xi = xi
	Xi := s.curve.ScalarBaseMult(xi)
	if Xi.IsIdentity() {
		// Unreachable for a non-zero scalar; indicates a faulty curve
		// backend or RNG.
		return &BugError{Reason: "own public share is the identity"}
	}

	rid := make([]byte, SecurityBytes)
	if _, err := io.ReadFull(s.rng, rid); err != nil {
		return &BugError{Reason: "sampling rid", Err: err}
	}

	var chainCode []byte
	if s.cfg.HDEnabled {
		chainCode = make([]byte, ChainCodeSize)
		if _, err := io.ReadFull(s.rng, chainCode); err != nil {
			return &BugError{Reason: "sampling chain code", Err: err}
		}
	}

	s.tracer.Stage("Sample schnorr commitment")
	schSecret, schCommit, err := schnorr.Commit(s.curve, s.rng)
	if err != nil {
		return &BugError{Reason: "sampling schnorr ephemeral", Err: err}
	}
	s.schSecret = schSecret

	s.tracer.Stage("Commit to public data")
	nonce := make([]byte, SecurityBytes)
	if _, err := io.ReadFull(s.rng, nonce); err != nil {
		return &BugError{Reason: "sampling decommitment nonce", Err: err}
	}
	s.myDecommitment = &MsgRound2{
		RID:       rid,
		X:         Xi,
		SchCommit: schCommit,
		ChainCode: chainCode,
		Decommit:  nonce,
	}
	s.myCommitment = &MsgRound1{
		Commitment: hashCommitment(s.cfg.SessionID, s.cfg.PartyIndex, s.myDecommitment),
	}

	return s.send(&Msg{Round1: s.myCommitment})
}

// sampleNonZeroScalar draws a uniform non-zero scalar for the secret share.
func (s *state) sampleNonZeroScalar() (curves.Scalar, error) {
	for {
		x, err := s.curve.RandomScalar(s.rng)
		if err != nil {
			return nil, err
		}
		if !x.IsZero() {
			return x, nil
		}
	}
}
