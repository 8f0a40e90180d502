package curves

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	secpScalarSize = 32
	secpPointSize  = 33
)

type Secp256k1 struct{}

// NewSecp256k1 returns the secp256k1 curve backed by the decred library.
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *Secp256k1) ScalarSize() int { return secpScalarSize }

func (c *Secp256k1) PointSize() int { return secpPointSize }

func (c *Secp256k1) RandomScalar(r io.Reader) (Scalar, error) {
	// Rejection sampling keeps the distribution uniform over [0, N).
	var buf [secpScalarSize]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("curves: sampling scalar: %w", err)
		}
		s := new(secpScalar)
		if overflow := s.v.SetBytes(&buf); overflow == 0 {
			return s, nil
		}
	}
}

func (c *Secp256k1) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != secpScalarSize {
		return nil, fmt.Errorf("curves: scalar must be %d bytes, got %d", secpScalarSize, len(b))
	}
	var buf [secpScalarSize]byte
	copy(buf[:], b)
	s := new(secpScalar)
	if overflow := s.v.SetBytes(&buf); overflow != 0 {
		return nil, errors.New("curves: scalar not in canonical range")
	}
	return s, nil
}

func (c *Secp256k1) PointFromBytes(b []byte) (Point, error) {
	if len(b) != secpPointSize {
		return nil, fmt.Errorf("curves: point must be %d bytes, got %d", secpPointSize, len(b))
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return nil, errors.New("curves: point encoding is not compressed")
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("curves: parsing point: %w", err)
	}
	p := new(secpPoint)
	pub.AsJacobian(&p.v)
	return p, nil
}

func (c *Secp256k1) BasePoint() Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	p := new(secpPoint)
	secp256k1.ScalarBaseMultNonConst(&one, &p.v)
	return p
}

func (c *Secp256k1) ScalarBaseMult(s Scalar) Point {
	p := new(secpPoint)
	secp256k1.ScalarBaseMultNonConst(&s.(*secpScalar).v, &p.v)
	return p
}

func (c *Secp256k1) Identity() Point {
	return new(secpPoint)
}

type secpScalar struct {
	v secp256k1.ModNScalar
}

func (s *secpScalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

func (s *secpScalar) Add(t Scalar) Scalar {
	out := new(secpScalar)
	out.v.Add2(&s.v, &t.(*secpScalar).v)
	return out
}

func (s *secpScalar) Mul(t Scalar) Scalar {
	out := new(secpScalar)
	out.v.Mul2(&s.v, &t.(*secpScalar).v)
	return out
}

func (s *secpScalar) Equal(t Scalar) bool {
	return s.v.Equals(&t.(*secpScalar).v)
}

func (s *secpScalar) IsZero() bool {
	return s.v.IsZero()
}

func (s *secpScalar) Zeroize() {
	s.v.Zero()
}

type secpPoint struct {
	v secp256k1.JacobianPoint
}

func (p *secpPoint) Bytes() []byte {
	if p.IsIdentity() {
		// The identity has no compressed form. It never appears on the
		// wire; decoders reject the all-zero encoding.
		return make([]byte, secpPointSize)
	}
	affine := p.v
	affine.ToAffine()
	return secp256k1.NewPublicKey(&affine.X, &affine.Y).SerializeCompressed()
}

func (p *secpPoint) Add(q Point) Point {
	out := new(secpPoint)
	secp256k1.AddNonConst(&p.v, &q.(*secpPoint).v, &out.v)
	return out
}

func (p *secpPoint) ScalarMult(s Scalar) Point {
	out := new(secpPoint)
	secp256k1.ScalarMultNonConst(&s.(*secpScalar).v, &p.v, &out.v)
	return out
}

func (p *secpPoint) Equal(q Point) bool {
	qp := q.(*secpPoint)
	if p.IsIdentity() || qp.IsIdentity() {
		return p.IsIdentity() && qp.IsIdentity()
	}
	a, b := p.v, qp.v
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func (p *secpPoint) IsIdentity() bool {
	var z secp256k1.FieldVal
	z.Set(&p.v.Z)
	return z.Normalize().IsZero()
}
