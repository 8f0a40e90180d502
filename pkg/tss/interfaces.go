package tss

// Message is the generic interface for all protocol messages.
// Concrete protocols wrap their wire payloads in a type implementing it.
type Message interface {
	// Type returns a string identifier for the message type.
	Type() string

	// From returns the sender's party index.
	From() uint16

	// IsBroadcast returns true if the message is intended for all parties.
	IsBroadcast() bool

	// Payload returns the serialized data of the message.
	Payload() []byte

	// RoundNumber returns the protocol round this message belongs to.
	RoundNumber() uint32
}

// Transport delivers protocol messages between the local party and its peers.
// A transport is owned by a single protocol driver: the inbound stream and
// the outbound sink are never shared between parties.
type Transport interface {
	// Send transmits a message to its recipients. It blocks until the
	// message is handed off to the underlying channel.
	Send(msg Message) error

	// Receive blocks until the next inbound message is available.
	// It returns io.EOF once the channel is closed.
	Receive() (Message, error)
}

// Tracer observes the lifecycle of a protocol execution. Implementations are
// write-only from the driver's side and must never affect protocol state.
type Tracer interface {
	ProtocolBegins()
	RoundBegins()
	Stage(name string)
	SendMsg()
	MsgSent()
	ReceiveMsgs()
	MsgsReceived()
	ProtocolEnds()
}

// NopTracer is a Tracer that ignores every callback.
type NopTracer struct{}

func (NopTracer) ProtocolBegins() {}
func (NopTracer) RoundBegins()    {}
func (NopTracer) Stage(string)    {}
func (NopTracer) SendMsg()        {}
func (NopTracer) MsgSent()        {}
func (NopTracer) ReceiveMsgs()    {}
func (NopTracer) MsgsReceived()   {}
func (NopTracer) ProtocolEnds()   {}
