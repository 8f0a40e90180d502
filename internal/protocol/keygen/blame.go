package keygen

import (
	"github.com/NillionNetwork/cggmp21/pkg/tss"
)

// collectBlame walks the evidence mailbox in index order and returns the
// culprits for which bad holds, each paired with the message id of the
// evidence. The result is sorted ascending by party index.
func collectBlame(evidence *mailbox, bad func(j uint16, e *envelope) bool) []tss.Culprit {
	var culprits []tss.Culprit
	for j, env := range evidence.slots {
		if env == nil {
			continue
		}
		if bad(uint16(j), env) {
			culprits = append(culprits, tss.Culprit{Party: uint16(j), MsgID: env.msgID})
		}
	}
	return culprits
}
