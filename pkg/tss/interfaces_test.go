package tss

import (
	"errors"
	"testing"
)

// mockMessage implements Message for testing purposes.
type mockMessage struct {
	msgType     string
	from        uint16
	isBroadcast bool
	payload     []byte
	round       uint32
}

func (m *mockMessage) Type() string        { return m.msgType }
func (m *mockMessage) From() uint16        { return m.from }
func (m *mockMessage) IsBroadcast() bool   { return m.isBroadcast }
func (m *mockMessage) Payload() []byte     { return m.payload }
func (m *mockMessage) RoundNumber() uint32 { return m.round }

func TestInterfaces(t *testing.T) {
	var _ Message = &mockMessage{}
	var _ Tracer = NopTracer{}

	msg := &mockMessage{
		msgType:     "test",
		from:        3,
		isBroadcast: true,
		round:       1,
	}
	if msg.Type() != "test" {
		t.Errorf("expected test, got %s", msg.Type())
	}
	if msg.From() != 3 {
		t.Errorf("expected sender 3, got %d", msg.From())
	}
	if !msg.IsBroadcast() {
		t.Error("expected broadcast message")
	}
}

func TestCulpritString(t *testing.T) {
	c := Culprit{Party: 2, MsgID: 17}
	if got := c.String(); got != "party 2 (msg 17)" {
		t.Errorf("unexpected culprit string: %q", got)
	}
}

func TestSentinels(t *testing.T) {
	for _, err := range []error{ErrInvalidMsg, ErrDuplicateMsg, ErrUnexpectedMsg, ErrProtocolDone} {
		wrapped := errors.Join(errors.New("context"), err)
		if !errors.Is(wrapped, err) {
			t.Errorf("sentinel %v lost through wrapping", err)
		}
	}
}
