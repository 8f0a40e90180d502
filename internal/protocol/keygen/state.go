package keygen

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/NillionNetwork/cggmp21/internal/crypto/curves"
	"github.com/NillionNetwork/cggmp21/internal/crypto/zk/schnorr"
	"github.com/NillionNetwork/cggmp21/pkg/tss"
)

// Config holds the parameters of one key generation run.
type Config struct {
	// SessionID is the caller-supplied execution identifier, globally
	// unique to this run. It domain-separates every hash.
	SessionID []byte
	// PartyIndex is the own index i in [0, PartyCount).
	PartyIndex uint16
	// PartyCount is n.
	PartyCount uint16
	// Curve selects the elliptic curve.
	Curve curves.Curve
	// ReliableBroadcast enables the echo subround that detects
	// equivocation by a corrupt broadcaster.
	ReliableBroadcast bool
	// HDEnabled makes the party contribute and require chain codes.
	HDEnabled bool
	// Rand is the CSPRNG; crypto/rand is used when nil.
	Rand io.Reader
	// Tracer observes protocol progress; may be nil.
	Tracer tss.Tracer
}

func (cfg *Config) validate() error {
	if cfg.PartyCount < 2 {
		return fmt.Errorf("keygen: party count must be at least 2, got %d", cfg.PartyCount)
	}
	if cfg.PartyIndex >= cfg.PartyCount {
		return fmt.Errorf("keygen: party index %d out of range [0, %d)", cfg.PartyIndex, cfg.PartyCount)
	}
	if cfg.Curve == nil {
		return fmt.Errorf("keygen: curve is required")
	}
	return nil
}

// state carries the protocol through its rounds. Secrets held here are
// wiped when the run ends, on every path.
type state struct {
	cfg    *Config
	curve  curves.Curve
	rng    io.Reader
	tracer tss.Tracer

	transport tss.Transport
	router    *router

	// Local secrets.
	xi        curves.Scalar
	schSecret *schnorr.Secret

	// Own round 1/2 payloads.
	myCommitment   *MsgRound1
	myDecommitment *MsgRound2

	// Collected peer messages.
	commitments   *mailbox
	decommitments *mailbox

	// Aggregates computed in round 3.
	rid       []byte
	chainCode []byte
}

// Run executes the non-threshold key generation protocol for one party and
// returns its key share. The driver suspends only at transport send and at
// round collection; on any error the share is absent and all held secret
// material has been zeroized.
func Run(cfg *Config, transport tss.Transport) (share *LocalPartySaveData, err error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, fmt.Errorf("keygen: transport is required")
	}

	s := &state{
		cfg:       cfg,
		curve:     cfg.Curve,
		rng:       cfg.Rand,
		tracer:    cfg.Tracer,
		transport: transport,
	}
	if s.rng == nil {
		s.rng = rand.Reader
	}
	if s.tracer == nil {
		s.tracer = tss.NopTracer{}
	}

	s.router = newRouter(cfg.PartyIndex, cfg.PartyCount, s.curve, transport)
	s.router.addRound(msgTypeRound1)
	if cfg.ReliableBroadcast {
		s.router.addRound(msgTypeReliabilityCheck)
	}
	s.router.addRound(msgTypeRound2)
	s.router.addRound(msgTypeRound3)

	defer func() {
		s.wipe(share != nil)
	}()

	s.tracer.ProtocolBegins()
	if err := s.round1(); err != nil {
		return nil, err
	}
	if err := s.round2(); err != nil {
		return nil, err
	}
	if err := s.round3(); err != nil {
		return nil, err
	}
	share, err = s.round4()
	if err != nil {
		return nil, err
	}
	s.tracer.ProtocolEnds()
	return share, nil
}

// wipe zeroizes the held secrets. The secret share survives only when it
// was moved into the returned key share.
func (s *state) wipe(sharedReturned bool) {
	if s.xi != nil && !sharedReturned {
		s.xi.Zeroize()
	}
	s.schSecret.Zeroize()
	if s.myDecommitment != nil {
		zeroBytes(s.myDecommitment.Decommit)
	}
}

// send encodes a message and hands it to the transport as a broadcast.
func (s *state) send(m *Msg) error {
	data, err := encodeMsg(s.curve, m)
	if err != nil {
		return &BugError{Reason: "encoding own message", Err: err}
	}
	disc := data[0]
	s.tracer.SendMsg()
	err = s.transport.Send(&KeygenMessage{
		FromIndex:  s.cfg.PartyIndex,
		Bcast:      true,
		Data:       data,
		TypeString: msgTypeString(disc),
		RoundNum:   uint32(disc),
	})
	if err != nil {
		return sendErr(err)
	}
	s.tracer.MsgSent()
	return nil
}

// collect blocks until the round for disc is complete.
func (s *state) collect(disc byte) (*mailbox, error) {
	s.tracer.ReceiveMsgs()
	box, err := s.router.complete(disc)
	if err != nil {
		return nil, err
	}
	s.tracer.MsgsReceived()
	return box, nil
}

// eachDecommitment visits every party's decommitment in index order, the
// own one folded in.
func (s *state) eachDecommitment(fn func(j uint16, d *MsgRound2)) {
	for j := uint16(0); j < s.cfg.PartyCount; j++ {
		if j == s.cfg.PartyIndex {
			fn(j, s.myDecommitment)
			continue
		}
		fn(j, s.decommitments.slots[j].msg.Round2)
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func xorBytes(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
