// Package identify lets a party prove, after key generation, that it still
// holds the secret share behind its public share, and offers an external
// consistency check over the outputs of a whole run.
package identify

import (
	"errors"
	"fmt"
	"io"

	"github.com/NillionNetwork/cggmp21/internal/crypto/commitment"
	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/hashrng"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
	"github.com/NillionNetwork/cggmp21/internal/protocol/keygen"
)

const tagChallenge = "cggmp21.identify.challenge"

// Proof shows ownership of the secret share behind a public share. It is
// non-interactive: the challenge is derived from the session id, the party
// index and the transcript of the proof itself.
type Proof struct {
	PartyIndex  uint16
	PublicShare curves.Point
	SchCommit   *schnorr.Commitment
	SchProof    *schnorr.Proof
}

// NewProof generates an ownership proof for the given key share.
func NewProof(sid []byte, curve curves.Curve, rng io.Reader, share *keygen.LocalPartySaveData) (*Proof, error) {
	if share == nil || share.Xi == nil {
		return nil, errors.New("identify: missing secret share")
	}
	if err := share.Validate(curve); err != nil {
		return nil, fmt.Errorf("identify: invalid key share: %w", err)
	}
	X := share.PublicShares[share.PartyIndex]

	secret, com, err := schnorr.Commit(curve, rng)
	if err != nil {
		return nil, err
	}
	defer secret.Zeroize()

	c, err := challenge(curve, sid, share.PartyIndex, X, com)
	if err != nil {
		return nil, err
	}
	return &Proof{
		PartyIndex:  share.PartyIndex,
		PublicShare: X,
		SchCommit:   com,
		SchProof:    schnorr.Prove(secret, c, share.Xi),
	}, nil
}

// Verify checks the ownership proof, optionally against an expected public
// share (pass nil to skip the binding check).
func (p *Proof) Verify(sid []byte, curve curves.Curve, expected curves.Point) bool {
	if p == nil || p.PublicShare == nil || p.SchCommit == nil || p.SchProof == nil {
		return false
	}
	if expected != nil && !p.PublicShare.Equal(expected) {
		return false
	}
	c, err := challenge(curve, sid, p.PartyIndex, p.PublicShare, p.SchCommit)
	if err != nil {
		return false
	}
	return p.SchProof.Verify(curve, p.SchCommit, c, p.PublicShare)
}

func challenge(curve curves.Curve, sid []byte, j uint16, X curves.Point, com *schnorr.Commitment) (curves.Scalar, error) {
	t := commitment.NewTagged(tagChallenge)
	t.AppendBytes(sid)
	t.AppendUint16(j)
	t.AppendBytes(X.Bytes())
	t.AppendBytes(com.A.Bytes())
	return curve.RandomScalar(hashrng.New(t.Sum()))
}

// VerifyOutputs cross-checks the outputs all parties produced in one run:
// one share per index, identical joint public key, public share vector and
// chain code everywhere, and each share internally consistent.
func VerifyOutputs(curve curves.Curve, shares []*keygen.LocalPartySaveData) error {
	if len(shares) < 2 {
		return errors.New("identify: need at least two shares")
	}
	ref := shares[0]
	for j, share := range shares {
		if share == nil {
			return fmt.Errorf("identify: missing output of party %d", j)
		}
		if int(share.PartyCount) != len(shares) {
			return fmt.Errorf("identify: party %d reports count %d, have %d outputs", j, share.PartyCount, len(shares))
		}
		if int(share.PartyIndex) != j {
			return fmt.Errorf("identify: output %d claims index %d", j, share.PartyIndex)
		}
		if err := share.Validate(curve); err != nil {
			return fmt.Errorf("identify: share of party %d: %w", j, err)
		}
		if !share.PublicKey.Equal(ref.PublicKey) {
			return fmt.Errorf("identify: party %d disagrees on the joint public key", j)
		}
		for k := range share.PublicShares {
			if !share.PublicShares[k].Equal(ref.PublicShares[k]) {
				return fmt.Errorf("identify: party %d disagrees on the public share of %d", j, k)
			}
		}
		if !commitment.Equal(share.ChainCode, ref.ChainCode) {
			return fmt.Errorf("identify: party %d disagrees on the chain code", j)
		}
	}
	return nil
}
