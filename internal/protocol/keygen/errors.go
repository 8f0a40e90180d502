package keygen

import (
	"fmt"
	"strings"

	"github.com/NillionNetwork/cggmp21/pkg/tss"
)

// AbortReason classifies a protocol abort with attributable blame.
type AbortReason int

const (
	// AbortRound1NotReliable: some parties received different round 1
	// vectors (echo hash mismatch).
	AbortRound1NotReliable AbortReason = iota + 1
	// AbortInvalidDecommitment: a revealed payload does not match the
	// commitment from round 1.
	AbortInvalidDecommitment
	// AbortMissingChainCode: chain-code support is enabled but a party
	// did not contribute one.
	AbortMissingChainCode
	// AbortInvalidSchnorrProof: a proof of knowledge failed to verify.
	AbortInvalidSchnorrProof
)

func (r AbortReason) String() string {
	switch r {
	case AbortRound1NotReliable:
		return "round 1 broadcast not reliable"
	case AbortInvalidDecommitment:
		return "invalid decommitment"
	case AbortMissingChainCode:
		return "missing chain code"
	case AbortInvalidSchnorrProof:
		return "invalid schnorr proof"
	}
	return fmt.Sprintf("abort reason %d", int(r))
}

// AbortError is a protocol-level failure with identified culprits. The list
// is non-empty and sorted ascending by party index.
type AbortError struct {
	Reason   AbortReason
	Culprits []tss.Culprit
}

func (e *AbortError) Error() string {
	parts := make([]string, len(e.Culprits))
	for i, c := range e.Culprits {
		parts[i] = c.String()
	}
	return fmt.Sprintf("keygen aborted: %s: %s", e.Reason, strings.Join(parts, ", "))
}

// IoError is a transport-level failure: send, receive or decode. It is not
// attributable beyond the source index, where known.
type IoError struct {
	// Op is "send" or "receive".
	Op string
	// Party is the source index, or -1 when unknown.
	Party int
	// Err is the underlying failure.
	Err error
}

func (e *IoError) Error() string {
	if e.Party < 0 {
		return fmt.Sprintf("keygen: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("keygen: %s (party %d): %v", e.Op, e.Party, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

func sendErr(err error) *IoError {
	return &IoError{Op: "send", Party: -1, Err: err}
}

func recvErr(party int, err error) *IoError {
	return &IoError{Op: "receive", Party: party, Err: err}
}

// BugError reports an internal invariant violation: it must never occur if
// the protocol and its dependencies are correct. Higher layers should log
// it as an implementation fault.
type BugError struct {
	Reason string
	Err    error
}

func (e *BugError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("keygen: internal bug: %s: %v", e.Reason, e.Err)
	}
	return "keygen: internal bug: " + e.Reason
}

func (e *BugError) Unwrap() error {
	return e.Err
}
