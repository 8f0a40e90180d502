package keygen

import (
	"errors"
	"fmt"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
)

// Wire discriminants. The first byte of every payload selects the variant.
const (
	msgTypeRound1           byte = 0x01
	msgTypeReliabilityCheck byte = 0x02
	msgTypeRound2           byte = 0x03
	msgTypeRound3           byte = 0x04
)

var (
	errBadDiscriminant = errors.New("keygen: unknown message discriminant")
	errBadLength       = errors.New("keygen: message has wrong length")
)

// encodeMsg produces the canonical wire form of a message: discriminant,
// then fixed-width fields in declaration order. Integers are big-endian,
// points compressed, scalars in the curve's canonical width, the optional
// chain code behind a 0/1 presence byte. Equal values encode to equal bytes.
func encodeMsg(curve curves.Curve, m *Msg) ([]byte, error) {
	disc, err := m.discriminant()
	if err != nil {
		return nil, err
	}
	switch disc {
	case msgTypeRound1:
		if len(m.Round1.Commitment) != commitmentSize {
			return nil, errBadLength
		}
		out := make([]byte, 0, 1+commitmentSize)
		out = append(out, disc)
		return append(out, m.Round1.Commitment...), nil

	case msgTypeReliabilityCheck:
		if len(m.ReliabilityCheck.Hash) != commitmentSize {
			return nil, errBadLength
		}
		out := make([]byte, 0, 1+commitmentSize)
		out = append(out, disc)
		return append(out, m.ReliabilityCheck.Hash...), nil

	case msgTypeRound2:
		d := m.Round2
		if len(d.RID) != SecurityBytes || len(d.Decommit) != SecurityBytes {
			return nil, errBadLength
		}
		if d.ChainCode != nil && len(d.ChainCode) != ChainCodeSize {
			return nil, errBadLength
		}
		if d.X == nil || d.X.IsIdentity() || d.SchCommit == nil || d.SchCommit.A == nil || d.SchCommit.A.IsIdentity() {
			return nil, errors.New("keygen: refusing to encode identity point")
		}
		out := make([]byte, 0, 1+SecurityBytes+2*curve.PointSize()+1+ChainCodeSize+SecurityBytes)
		out = append(out, disc)
		out = append(out, d.RID...)
		out = append(out, d.X.Bytes()...)
		out = append(out, d.SchCommit.A.Bytes()...)
		if d.ChainCode == nil {
			out = append(out, 0)
		} else {
			out = append(out, 1)
			out = append(out, d.ChainCode...)
		}
		return append(out, d.Decommit...), nil

	case msgTypeRound3:
		p := m.Round3.SchProof
		if p == nil || p.Z == nil {
			return nil, errors.New("keygen: missing proof scalar")
		}
		out := make([]byte, 0, 1+curve.ScalarSize())
		out = append(out, disc)
		return append(out, p.Z.Bytes()...), nil
	}
	return nil, errBadDiscriminant
}

// decodeMsg parses the canonical wire form. It fails fast on an unknown
// discriminant, a length mismatch, a non-canonical point or scalar, and on
// identity points.
func decodeMsg(curve curves.Curve, b []byte) (*Msg, error) {
	if len(b) == 0 {
		return nil, errBadLength
	}
	disc, rest := b[0], b[1:]
	switch disc {
	case msgTypeRound1:
		if len(rest) != commitmentSize {
			return nil, errBadLength
		}
		com := make([]byte, commitmentSize)
		copy(com, rest)
		return &Msg{Round1: &MsgRound1{Commitment: com}}, nil

	case msgTypeReliabilityCheck:
		if len(rest) != commitmentSize {
			return nil, errBadLength
		}
		h := make([]byte, commitmentSize)
		copy(h, rest)
		return &Msg{ReliabilityCheck: &MsgReliabilityCheck{Hash: h}}, nil

	case msgTypeRound2:
		ps := curve.PointSize()
		base := SecurityBytes + 2*ps + 1 + SecurityBytes
		var withCC bool
		switch len(rest) {
		case base:
		case base + ChainCodeSize:
			withCC = true
		default:
			return nil, errBadLength
		}
		d := &MsgRound2{}
		d.RID = make([]byte, SecurityBytes)
		copy(d.RID, rest[:SecurityBytes])
		rest = rest[SecurityBytes:]

		X, err := curve.PointFromBytes(rest[:ps])
		if err != nil {
			return nil, fmt.Errorf("keygen: decoding X: %w", err)
		}
		d.X = X
		rest = rest[ps:]

		A, err := curve.PointFromBytes(rest[:ps])
		if err != nil {
			return nil, fmt.Errorf("keygen: decoding schnorr commitment: %w", err)
		}
		d.SchCommit = &schnorr.Commitment{A: A}
		rest = rest[ps:]

		switch rest[0] {
		case 0:
			if withCC {
				return nil, errBadLength
			}
		case 1:
			if !withCC {
				return nil, errBadLength
			}
			d.ChainCode = make([]byte, ChainCodeSize)
			copy(d.ChainCode, rest[1:1+ChainCodeSize])
			rest = rest[ChainCodeSize:]
		default:
			return nil, errors.New("keygen: invalid chain code presence byte")
		}
		rest = rest[1:]

		d.Decommit = make([]byte, SecurityBytes)
		copy(d.Decommit, rest)
		return &Msg{Round2: d}, nil

	case msgTypeRound3:
		if len(rest) != curve.ScalarSize() {
			return nil, errBadLength
		}
		z, err := curve.ScalarFromBytes(rest)
		if err != nil {
			return nil, fmt.Errorf("keygen: decoding proof scalar: %w", err)
		}
		return &Msg{Round3: &MsgRound3{SchProof: &schnorr.Proof{Z: z}}}, nil
	}
	return nil, errBadDiscriminant
}

func msgTypeString(disc byte) string {
	switch disc {
	case msgTypeRound1:
		return "KeygenRound1"
	case msgTypeReliabilityCheck:
		return "KeygenReliabilityCheck"
	case msgTypeRound2:
		return "KeygenRound2"
	case msgTypeRound3:
		return "KeygenRound3"
	}
	return "KeygenUnknown"
}
