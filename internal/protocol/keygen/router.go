package keygen

import (
	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/pkg/tss"
)

// envelope is one accepted peer message together with the transport-level
// id used as forensic evidence in blame lists.
type envelope struct {
	from  uint16
	msgID uint64
	msg   *Msg
}

// mailbox gathers exactly one message per peer for one round. slots is
// indexed by sender; the own slot stays nil.
type mailbox struct {
	slots []*envelope
	count int
}

func (b *mailbox) full(n uint16) bool {
	return b.count == int(n)-1
}

// router demultiplexes inbound messages into per-round mailboxes. Arrivals
// for rounds other than the one being completed are buffered, not dropped;
// a round releases only once every peer has contributed exactly one message.
type router struct {
	self  uint16
	n     uint16
	curve curves.Curve

	transport tss.Transport
	boxes     map[byte]*mailbox
	nextID    uint64
}

func newRouter(self, n uint16, curve curves.Curve, transport tss.Transport) *router {
	return &router{
		self:      self,
		n:         n,
		curve:     curve,
		transport: transport,
		boxes:     make(map[byte]*mailbox),
	}
}

// addRound registers a mailbox for a message variant. Variants without a
// registered mailbox are rejected on arrival.
func (r *router) addRound(disc byte) {
	r.boxes[disc] = &mailbox{slots: make([]*envelope, r.n)}
}

// complete blocks until the mailbox for disc holds one message from every
// peer, pulling from the transport and buffering other rounds on the way.
func (r *router) complete(disc byte) (*mailbox, error) {
	box := r.boxes[disc]
	for !box.full(r.n) {
		m, err := r.transport.Receive()
		if err != nil {
			return nil, recvErr(-1, err)
		}
		if err := r.accept(m); err != nil {
			return nil, err
		}
	}
	return box, nil
}

func (r *router) accept(m tss.Message) error {
	j := m.From()
	if j >= r.n || j == r.self {
		return recvErr(int(j), tss.ErrInvalidMsg)
	}
	msg, err := decodeMsg(r.curve, m.Payload())
	if err != nil {
		return recvErr(int(j), err)
	}
	disc, _ := msg.discriminant()
	if m.RoundNumber() != uint32(disc) {
		return recvErr(int(j), tss.ErrInvalidMsg)
	}
	box, ok := r.boxes[disc]
	if !ok {
		return recvErr(int(j), tss.ErrUnexpectedMsg)
	}
	if box.slots[j] != nil {
		return recvErr(int(j), tss.ErrDuplicateMsg)
	}
	r.nextID++
	box.slots[j] = &envelope{from: j, msgID: r.nextID, msg: msg}
	box.count++
	return nil
}
