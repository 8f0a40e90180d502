// Package commitment implements the hash transcript used for commitments
// and challenges. Every construction is domain separated by an ASCII tag and
// every variable-length field is length prefixed, so no two distinct field
// sequences ever hash to the same input stream.
package commitment

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"hash"
)

// Size is the width of a transcript digest in bytes.
const Size = sha256.Size

// version is bound into every transcript. Bump it only together with a wire
// format change: digests across versions are incompatible.
const version = "TSSv1"

// Transcript accumulates a domain-separated record stream over SHA-256.
//
// Layout: version || u16(len(tag)) || tag || field*, where a bytes field is
// u32(len) || bytes and integers are fixed-width big-endian.
type Transcript struct {
	h hash.Hash
}

// NewTagged starts a transcript under the given domain tag.
func NewTagged(tag string) *Transcript {
	t := &Transcript{h: sha256.New()}
	t.h.Write([]byte(version))
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(tag)))
	t.h.Write(l[:])
	t.h.Write([]byte(tag))
	return t
}

// AppendBytes writes a length-prefixed variable-length field.
func (t *Transcript) AppendBytes(b []byte) *Transcript {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	t.h.Write(l[:])
	t.h.Write(b)
	return t
}

// AppendUint16 writes a fixed-width big-endian integer field.
func (t *Transcript) AppendUint16(v uint16) *Transcript {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	t.h.Write(b[:])
	return t
}

// AppendOptionalBytes writes a presence byte, then the field if present.
// A nil slice means absent; an empty non-nil slice is a present empty field.
func (t *Transcript) AppendOptionalBytes(b []byte) *Transcript {
	if b == nil {
		t.h.Write([]byte{0})
		return t
	}
	t.h.Write([]byte{1})
	return t.AppendBytes(b)
}

// Sum finalizes the transcript and returns its digest. The transcript must
// not be appended to afterwards.
func (t *Transcript) Sum() []byte {
	return t.h.Sum(nil)
}

// Equal compares two digests in constant time.
func Equal(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}
