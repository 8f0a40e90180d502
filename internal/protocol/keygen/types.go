package keygen

import (
	"errors"
	"fmt"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
)

// MsgRound1 carries the hash commitment V_i to the party's round 2 payload.
type MsgRound1 struct {
	Commitment []byte
}

// MsgReliabilityCheck carries the echo hash over the ordered round 1 vector.
// Parties exchange it to ensure reliability of the broadcast channel.
type MsgReliabilityCheck struct {
	Hash []byte
}

// MsgRound2 is the decommitment: the public payload hidden behind V_i.
type MsgRound2 struct {
	// RID is the party's contribution rid_i to the joint randomness.
	RID []byte
	// X is the public share X_i = x_i * G.
	X curves.Point
	// SchCommit is the Schnorr ephemeral A_i.
	SchCommit *schnorr.Commitment
	// ChainCode is the optional hierarchical-derivation contribution.
	// nil when the party does not contribute one.
	ChainCode []byte
	// Decommit is the nonce u_i bound into V_i.
	Decommit []byte
}

// MsgRound3 carries the Schnorr proof of knowledge of x_i.
type MsgRound3 struct {
	SchProof *schnorr.Proof
}

// Msg is the union of the wire variants. Exactly one field is set.
type Msg struct {
	Round1           *MsgRound1
	ReliabilityCheck *MsgReliabilityCheck
	Round2           *MsgRound2
	Round3           *MsgRound3
}

func (m *Msg) discriminant() (byte, error) {
	switch {
	case m.Round1 != nil:
		return msgTypeRound1, nil
	case m.ReliabilityCheck != nil:
		return msgTypeReliabilityCheck, nil
	case m.Round2 != nil:
		return msgTypeRound2, nil
	case m.Round3 != nil:
		return msgTypeRound3, nil
	}
	return 0, errors.New("keygen: empty message")
}

// KeygenMessage is a concrete implementation of tss.Message for KeyGen.
type KeygenMessage struct {
	FromIndex  uint16
	Bcast      bool
	Data       []byte
	TypeString string
	RoundNum   uint32
}

func (m *KeygenMessage) Type() string {
	return m.TypeString
}

func (m *KeygenMessage) From() uint16 {
	return m.FromIndex
}

func (m *KeygenMessage) IsBroadcast() bool {
	return m.Bcast
}

func (m *KeygenMessage) Payload() []byte {
	return m.Data
}

func (m *KeygenMessage) RoundNumber() uint32 {
	return m.RoundNum
}

// LocalPartySaveData contains the final result of the KeyGen protocol
// that needs to be persisted by the local party.
type LocalPartySaveData struct {
	// PartyIndex is the own index i in [0, PartyCount).
	PartyIndex uint16
	// PartyCount is n.
	PartyCount uint16
	// CurveName identifies the curve the share lives on.
	CurveName string

	// PublicKey is the joint public key X = sum X_j.
	PublicKey curves.Point
	// PublicShares holds X_j for every party, indexed by sender.
	PublicShares []curves.Point

	// Xi is the own secret share x_i.
	Xi curves.Scalar

	// ChainCode is the aggregated hierarchical-derivation entropy.
	// nil unless chain-code support was enabled for the run.
	ChainCode []byte
}

// Validate performs the structural self-check required before the share is
// handed to the caller.
func (d *LocalPartySaveData) Validate(curve curves.Curve) error {
	if d.PartyCount < 2 {
		return fmt.Errorf("party count %d below minimum", d.PartyCount)
	}
	if d.PartyIndex >= d.PartyCount {
		return fmt.Errorf("party index %d out of range [0, %d)", d.PartyIndex, d.PartyCount)
	}
	if len(d.PublicShares) != int(d.PartyCount) {
		return fmt.Errorf("expected %d public shares, got %d", d.PartyCount, len(d.PublicShares))
	}
	if d.CurveName != curve.Name() {
		return fmt.Errorf("share is on curve %q, not %q", d.CurveName, curve.Name())
	}
	sum := curve.Identity()
	for j, share := range d.PublicShares {
		if share == nil || share.IsIdentity() {
			return fmt.Errorf("public share of party %d is the identity", j)
		}
		sum = sum.Add(share)
	}
	if d.PublicKey == nil || d.PublicKey.IsIdentity() {
		return errors.New("joint public key is the identity")
	}
	if !sum.Equal(d.PublicKey) {
		return errors.New("public shares do not sum to the joint public key")
	}
	if d.Xi == nil || d.Xi.IsZero() {
		return errors.New("secret share is zero")
	}
	if !curve.ScalarBaseMult(d.Xi).Equal(d.PublicShares[d.PartyIndex]) {
		return errors.New("secret share does not match own public share")
	}
	if d.ChainCode != nil && len(d.ChainCode) != ChainCodeSize {
		return fmt.Errorf("chain code must be %d bytes, got %d", ChainCodeSize, len(d.ChainCode))
	}
	return nil
}
