package curves

import (
	"io"
	"math/big"
)

// Scalar represents a value in the curve's scalar field.
type Scalar interface {
	// Bytes returns the canonical fixed-width encoding of the scalar.
	Bytes() []byte

	// Add returns this scalar plus s.
	Add(s Scalar) Scalar

	// Mul returns this scalar times s.
	Mul(s Scalar) Scalar

	// Equal reports whether both scalars hold the same value.
	Equal(s Scalar) bool

	// IsZero reports whether the scalar is zero.
	IsZero() bool

	// Zeroize overwrites the scalar with zeros. The value must not be
	// used afterwards.
	Zeroize()
}

// Point represents a point on an elliptic curve.
// It abstracts away the underlying coordinate system (Jacobian, Edwards).
type Point interface {
	// Bytes returns the canonical compressed encoding of the point.
	// The identity is rejected by decoders; encoding it is reserved for
	// debugging output.
	Bytes() []byte

	// Add returns this point plus p.
	Add(p Point) Point

	// ScalarMult returns s times this point.
	ScalarMult(s Scalar) Point

	// Equal reports whether both points are the same group element.
	Equal(p Point) bool

	// IsIdentity reports whether the point is the group identity.
	IsIdentity() bool
}

// Curve bundles the group operations the protocols need. Implementations
// must be stateless and safe for concurrent use.
type Curve interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// ScalarSize returns the width of a canonical scalar encoding.
	ScalarSize() int

	// PointSize returns the width of a canonical point encoding.
	PointSize() int

	// RandomScalar draws a uniform scalar in [0, order) from r.
	// Given a deterministic reader it is itself deterministic.
	RandomScalar(r io.Reader) (Scalar, error)

	// ScalarFromBytes decodes a canonical scalar encoding. It rejects
	// wrong lengths and values outside the scalar field.
	ScalarFromBytes(b []byte) (Scalar, error)

	// PointFromBytes decodes a canonical point encoding. It rejects
	// wrong lengths, points off the curve, non-canonical encodings,
	// points outside the prime-order subgroup and the identity.
	PointFromBytes(b []byte) (Point, error)

	// BasePoint returns the generator point G.
	BasePoint() Point

	// ScalarBaseMult returns s * G.
	ScalarBaseMult(s Scalar) Point

	// Identity returns the group identity.
	Identity() Point
}
