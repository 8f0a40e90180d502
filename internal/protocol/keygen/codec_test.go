package keygen

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
)

func testCurves() map[string]curves.Curve {
	return map[string]curves.Curve{
		"secp256k1":    curves.NewSecp256k1(),
		"edwards25519": curves.NewEdwards25519(),
	}
}

func randomRound2(t *testing.T, curve curves.Curve, withCC bool) *MsgRound2 {
	t.Helper()
	x, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	_, com, err := schnorr.Commit(curve, rand.Reader)
	require.NoError(t, err)
	d := &MsgRound2{
		RID:       make([]byte, SecurityBytes),
		X:         curve.ScalarBaseMult(x),
		SchCommit: com,
		Decommit:  make([]byte, SecurityBytes),
	}
	_, err = rand.Read(d.RID)
	require.NoError(t, err)
	_, err = rand.Read(d.Decommit)
	require.NoError(t, err)
	if withCC {
		d.ChainCode = make([]byte, ChainCodeSize)
		_, err = rand.Read(d.ChainCode)
		require.NoError(t, err)
	}
	return d
}

func TestCodecRoundTrip(t *testing.T) {
	for name, curve := range testCurves() {
		t.Run(name, func(t *testing.T) {
			com := make([]byte, commitmentSize)
			_, err := rand.Read(com)
			require.NoError(t, err)
			z, err := curve.RandomScalar(rand.Reader)
			require.NoError(t, err)

			msgs := []*Msg{
				{Round1: &MsgRound1{Commitment: com}},
				{ReliabilityCheck: &MsgReliabilityCheck{Hash: com}},
				{Round2: randomRound2(t, curve, false)},
				{Round2: randomRound2(t, curve, true)},
				{Round3: &MsgRound3{SchProof: &schnorr.Proof{Z: z}}},
			}
			for _, m := range msgs {
				data, err := encodeMsg(curve, m)
				require.NoError(t, err)

				// The encoder is canonical: same value, same bytes.
				again, err := encodeMsg(curve, m)
				require.NoError(t, err)
				assert.Equal(t, data, again)

				decoded, err := decodeMsg(curve, data)
				require.NoError(t, err)
				reencoded, err := encodeMsg(curve, decoded)
				require.NoError(t, err)
				assert.Equal(t, data, reencoded)
			}
		})
	}
}

func TestCodecRound2Fields(t *testing.T) {
	curve := curves.NewSecp256k1()
	d := randomRound2(t, curve, true)
	data, err := encodeMsg(curve, &Msg{Round2: d})
	require.NoError(t, err)
	decoded, err := decodeMsg(curve, data)
	require.NoError(t, err)

	got := decoded.Round2
	assert.Equal(t, d.RID, got.RID)
	assert.Equal(t, d.ChainCode, got.ChainCode)
	assert.Equal(t, d.Decommit, got.Decommit)
	assert.True(t, d.X.Equal(got.X))
	assert.True(t, d.SchCommit.A.Equal(got.SchCommit.A))
}

func TestCodecDecodeFailures(t *testing.T) {
	curve := curves.NewSecp256k1()
	d := randomRound2(t, curve, false)
	valid, err := encodeMsg(curve, &Msg{Round2: d})
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":              {},
		"unknown variant":    {0x7f, 0x00},
		"round1 short":       {msgTypeRound1, 0x01},
		"round2 truncated":   valid[:len(valid)-1],
		"round2 trailing":    append(append([]byte{}, valid...), 0x00),
		"echo wrong length":  append([]byte{msgTypeReliabilityCheck}, make([]byte, commitmentSize+1)...),
		"round3 bad length":  append([]byte{msgTypeRound3}, make([]byte, curve.ScalarSize()-1)...),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeMsg(curve, data)
			require.Error(t, err)
		})
	}

	t.Run("identity point", func(t *testing.T) {
		bad := append([]byte{}, valid...)
		// Zero out X's encoding.
		for i := 1 + SecurityBytes; i < 1+SecurityBytes+curve.PointSize(); i++ {
			bad[i] = 0
		}
		_, err := decodeMsg(curve, bad)
		require.Error(t, err)
	})

	t.Run("non-canonical scalar", func(t *testing.T) {
		bad := make([]byte, 1+curve.ScalarSize())
		bad[0] = msgTypeRound3
		for i := 1; i < len(bad); i++ {
			bad[i] = 0xff
		}
		_, err := decodeMsg(curve, bad)
		require.Error(t, err)
	})

	t.Run("bad presence byte", func(t *testing.T) {
		bad := append([]byte{}, valid...)
		bad[1+SecurityBytes+2*curve.PointSize()] = 0x02
		_, err := decodeMsg(curve, bad)
		require.Error(t, err)
	})

	t.Run("encode identity X", func(t *testing.T) {
		broken := randomRound2(t, curve, false)
		broken.X = curve.Identity()
		_, err := encodeMsg(curve, &Msg{Round2: broken})
		require.Error(t, err)
	})
}
