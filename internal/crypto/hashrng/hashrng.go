// Package hashrng turns a digest into an unbounded deterministic byte
// stream. It backs Fiat-Shamir scalar derivation: every party expanding the
// same seed reads the same stream.
package hashrng

import (
	"io"

	"golang.org/x/crypto/blake2b"
)

// New returns a reader producing the BLAKE2Xb extendable output of seed.
func New(seed []byte) io.Reader {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		// Only reachable with an oversized key; we pass none.
		panic(err)
	}
	if _, err := xof.Write(seed); err != nil {
		panic(err)
	}
	return xof
}
