// Package schnorr implements a Schnorr proof of knowledge of a discrete
// logarithm with an externally supplied challenge. The caller derives the
// challenge from its own transcript; prover and verifier must agree on it.
package schnorr

import (
	"io"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
)

// Secret is the prover's ephemeral r. It must be zeroized once the proof
// has been produced.
type Secret struct {
	r curves.Scalar
}

// Commitment is the public ephemeral A = r * G broadcast ahead of the
// challenge.
type Commitment struct {
	A curves.Point
}

// Commit samples an ephemeral secret and returns it with its commitment.
func Commit(curve curves.Curve, rng io.Reader) (*Secret, *Commitment, error) {
	for {
		r, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, nil, err
		}
		if r.IsZero() {
			continue
		}
		return &Secret{r: r}, &Commitment{A: curve.ScalarBaseMult(r)}, nil
	}
}

// Zeroize wipes the ephemeral secret.
func (s *Secret) Zeroize() {
	if s != nil && s.r != nil {
		s.r.Zeroize()
	}
}

// Proof is the prover's response z = r + c * x.
type Proof struct {
	Z curves.Scalar
}

// Prove answers challenge c for the witness x behind X = x * G.
func Prove(sec *Secret, c, x curves.Scalar) *Proof {
	return &Proof{Z: sec.r.Add(c.Mul(x))}
}

// Verify checks z * G == A + c * X.
func (p *Proof) Verify(curve curves.Curve, com *Commitment, c curves.Scalar, X curves.Point) bool {
	if p == nil || p.Z == nil || com == nil || com.A == nil || c == nil || X == nil {
		return false
	}
	lhs := curve.ScalarBaseMult(p.Z)
	rhs := com.A.Add(X.ScalarMult(c))
	return lhs.Equal(rhs)
}
