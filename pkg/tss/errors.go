package tss

import (
	"errors"
	"fmt"
)

// Common errors returned by the TSS library
var (
	ErrInvalidMsg    = errors.New("invalid message received")
	ErrDuplicateMsg  = errors.New("duplicate message from sender in the same round")
	ErrUnexpectedMsg = errors.New("message variant not expected by the protocol")
	ErrProtocolDone  = errors.New("protocol already finished")
)

// Culprit identifies a misbehaving party together with the transport message
// that can be presented as evidence to a higher layer.
type Culprit struct {
	Party uint16
	MsgID uint64
}

func (c Culprit) String() string {
	return fmt.Sprintf("party %d (msg %d)", c.Party, c.MsgID)
}
