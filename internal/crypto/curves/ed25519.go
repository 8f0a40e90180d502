package curves

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"
)

const (
	edScalarSize = 32
	edPointSize  = 32
)

type Edwards25519 struct{}

// NewEdwards25519 returns the edwards25519 curve backed by filippo.io's
// implementation. Scalars and points use the canonical RFC 8032
// little-endian encodings.
func NewEdwards25519() Curve {
	return &Edwards25519{}
}

func (c *Edwards25519) Name() string {
	return "edwards25519"
}

func (c *Edwards25519) Order() *big.Int {
	// l = 2^252 + 27742317777372353535851937790883648493
	l, _ := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	return l
}

func (c *Edwards25519) ScalarSize() int { return edScalarSize }

func (c *Edwards25519) PointSize() int { return edPointSize }

func (c *Edwards25519) RandomScalar(r io.Reader) (Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("curves: sampling scalar: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return nil, err
	}
	return &edScalar{v: s}, nil
}

func (c *Edwards25519) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != edScalarSize {
		return nil, fmt.Errorf("curves: scalar must be %d bytes, got %d", edScalarSize, len(b))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, errors.New("curves: scalar not in canonical range")
	}
	return &edScalar{v: s}, nil
}

func (c *Edwards25519) PointFromBytes(b []byte) (Point, error) {
	if len(b) != edPointSize {
		return nil, fmt.Errorf("curves: point must be %d bytes, got %d", edPointSize, len(b))
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("curves: parsing point: %w", err)
	}
	// SetBytes tolerates a few legacy non-canonical encodings; a
	// round-trip comparison pins the canonical one.
	if !bytes.Equal(p.Bytes(), b) {
		return nil, errors.New("curves: point encoding is not canonical")
	}
	if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, errors.New("curves: point is the identity")
	}
	// Only the prime-order subgroup is accepted: [l]P, computed as
	// [l-1]P + P, must be the identity. This rejects the small-order points,
	// such as the all-zero encoding.
	var one [edScalarSize]byte
	one[0] = 1
	minusOne, _ := edwards25519.NewScalar().SetCanonicalBytes(one[:])
	minusOne.Negate(minusOne)
	q := edwards25519.NewIdentityPoint().ScalarMult(minusOne, p)
	if q.Add(q, p).Equal(edwards25519.NewIdentityPoint()) != 1 {
		return nil, errors.New("curves: point is not in the prime-order subgroup")
	}
	return &edPoint{v: p}, nil
}

func (c *Edwards25519) BasePoint() Point {
	return &edPoint{v: edwards25519.NewGeneratorPoint()}
}

func (c *Edwards25519) ScalarBaseMult(s Scalar) Point {
	return &edPoint{v: edwards25519.NewIdentityPoint().ScalarBaseMult(s.(*edScalar).v)}
}

func (c *Edwards25519) Identity() Point {
	return &edPoint{v: edwards25519.NewIdentityPoint()}
}

type edScalar struct {
	v *edwards25519.Scalar
}

func (s *edScalar) Bytes() []byte {
	return s.v.Bytes()
}

func (s *edScalar) Add(t Scalar) Scalar {
	return &edScalar{v: edwards25519.NewScalar().Add(s.v, t.(*edScalar).v)}
}

func (s *edScalar) Mul(t Scalar) Scalar {
	return &edScalar{v: edwards25519.NewScalar().Multiply(s.v, t.(*edScalar).v)}
}

func (s *edScalar) Equal(t Scalar) bool {
	return s.v.Equal(t.(*edScalar).v) == 1
}

func (s *edScalar) IsZero() bool {
	return s.v.Equal(edwards25519.NewScalar()) == 1
}

func (s *edScalar) Zeroize() {
	s.v.Set(edwards25519.NewScalar())
}

type edPoint struct {
	v *edwards25519.Point
}

func (p *edPoint) Bytes() []byte {
	return p.v.Bytes()
}

func (p *edPoint) Add(q Point) Point {
	return &edPoint{v: edwards25519.NewIdentityPoint().Add(p.v, q.(*edPoint).v)}
}

func (p *edPoint) ScalarMult(s Scalar) Point {
	return &edPoint{v: edwards25519.NewIdentityPoint().ScalarMult(s.(*edScalar).v, p.v)}
}

func (p *edPoint) Equal(q Point) bool {
	return p.v.Equal(q.(*edPoint).v) == 1
}

func (p *edPoint) IsIdentity() bool {
	return p.v.Equal(edwards25519.NewIdentityPoint()) == 1
}
