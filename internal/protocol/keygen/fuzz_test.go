package keygen

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
)

// FuzzDecodeMsg throws arbitrary payloads at the decoder. Decoding must
// never panic, and anything it accepts must re-encode to the same bytes
// (the codec admits exactly one encoding per value).
func FuzzDecodeMsg(f *testing.F) {
	curve := curves.NewSecp256k1()

	com := make([]byte, commitmentSize)
	if _, err := rand.Read(com); err != nil {
		f.Fatal(err)
	}
	seed1, err := encodeMsg(curve, &Msg{Round1: &MsgRound1{Commitment: com}})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed1)

	x, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		f.Fatal(err)
	}
	_, schCom, err := schnorr.Commit(curve, rand.Reader)
	if err != nil {
		f.Fatal(err)
	}
	d := &MsgRound2{
		RID:       make([]byte, SecurityBytes),
		X:         curve.ScalarBaseMult(x),
		SchCommit: schCom,
		ChainCode: make([]byte, ChainCodeSize),
		Decommit:  make([]byte, SecurityBytes),
	}
	seed2, err := encodeMsg(curve, &Msg{Round2: d})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed2)

	f.Add([]byte{})
	f.Add([]byte{msgTypeRound3})
	f.Add(make([]byte, 1024))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, curve := range []curves.Curve{curves.NewSecp256k1(), curves.NewEdwards25519()} {
			m, err := decodeMsg(curve, data)
			if err != nil {
				continue
			}
			reencoded, err := encodeMsg(curve, m)
			if err != nil {
				t.Fatalf("accepted message failed to re-encode: %v", err)
			}
			if !bytes.Equal(reencoded, data) {
				t.Fatalf("decode/encode round trip changed bytes:\n in: %x\nout: %x", data, reencoded)
			}
		}
	})
}
