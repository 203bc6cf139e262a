package simon

import (
	"errors"
	"fmt"
)

// Direction of one block operation.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "DECRYPT"
	}
	return "ENCRYPT"
}

// Phase is the engine's control state. Exactly one phase is active; Idle
// and Output are the only suspension points.
type Phase int

const (
	Idle Phase = iota
	EncPrepare
	EncRun
	DecKeyPrepare
	DecKeyRun
	DecPrepare
	DecRun
	Output
)

var phaseNames = [...]string{"Idle", "EncPrepare", "EncRun", "DecKeyPrepare", "DecKeyRun", "DecPrepare", "DecRun", "Output"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Request is one single-block operation. Key holds keyWords words, lowest
// word first; Text holds the two block words in the same order the
// reference byte packing produces them (word 0 from the first bytes).
type Request struct {
	Direction Direction
	Key       []uint64
	Text      [2]uint64
}

// Response echoes the direction and carries the output block. It is held
// stable from entry into Output until the caller accepts it.
type Response struct {
	Direction Direction
	Text      [2]uint64
}

var (
	// ErrBusy is returned by Submit while an operation is in flight.
	ErrBusy = errors.New("simon: engine is not idle")
	// ErrNoResponse is returned by Accept outside the Output phase.
	ErrNoResponse = errors.New("simon: no completed response to accept")
)

// Engine drives one operation at a time through the multi-phase pipeline.
// All state is owned exclusively by the engine and mutated only inside
// Step; each Step reads the pre-step state and commits the new state
// atomically from the caller's point of view.
type Engine struct {
	cfg *Config
	seq SequenceGenerator

	phase Phase
	round int

	x, y   uint64   // text state
	window []uint64 // key window, one word shifted out per schedule step
	cache  []uint64 // last m round keys seen during decrypt warm-up

	req  Request
	resp Response
}

// NewEngine constructs an engine for one fixed (wordWidth, keyWords)
// configuration. Unsupported pairs fail here, never at request time.
func NewEngine(wordWidth, keyWords int) (*Engine, error) {
	cfg, err := Lookup(wordWidth, keyWords)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		seq:    newSequenceGenerator(cfg),
		window: make([]uint64, cfg.KeyWords),
		cache:  make([]uint64, cfg.KeyWords),
	}, nil
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() *Config { return e.cfg }

// Phase returns the active control phase.
func (e *Engine) Phase() Phase { return e.phase }

// Round returns the bounded step counter of the current Run phase.
func (e *Engine) Round() int { return e.round }

// Busy is false only in Idle.
func (e *Engine) Busy() bool { return e.phase != Idle }

// Submit accepts a new request. The engine copies the request at
// acceptance, so the caller keeps ownership of its own buffers afterward;
// before acceptance (i.e. while Busy) nothing is read and the submission is
// rejected outright.
func (e *Engine) Submit(req Request) error {
	if e.phase != Idle {
		return ErrBusy
	}
	if len(req.Key) != e.cfg.KeyWords {
		return fmt.Errorf("simon: request carries %d key words, configuration needs %d", len(req.Key), e.cfg.KeyWords)
	}
	for i, w := range req.Key {
		if w&^e.cfg.mask != 0 {
			return fmt.Errorf("simon: key word %d exceeds %d bits", i, e.cfg.WordWidth)
		}
	}
	if req.Text[0]&^e.cfg.mask != 0 || req.Text[1]&^e.cfg.mask != 0 {
		return fmt.Errorf("simon: text word exceeds %d bits", e.cfg.WordWidth)
	}
	e.req = Request{
		Direction: req.Direction,
		Key:       append([]uint64(nil), req.Key...),
		Text:      req.Text,
	}
	if req.Direction == Decrypt {
		e.phase = DecKeyPrepare
	} else {
		e.phase = EncPrepare
	}
	return nil
}

// Step advances the pipeline by one logical step. In Idle and Output it is
// a no-op: those phases wait on the caller.
func (e *Engine) Step() {
	switch e.phase {
	case Idle, Output:
		// suspension points

	case EncPrepare:
		e.x, e.y = e.req.Text[1], e.req.Text[0]
		copy(e.window, e.req.Key)
		e.seq.Reset(Encrypt)
		e.round = 0
		e.phase = EncRun

	case EncRun:
		roundKey := e.window[0]
		e.scheduleStep(Encrypt)
		e.x, e.y = roundStep(e.x, e.y, roundKey, e.cfg.WordWidth)
		if e.advanceRound() {
			e.complete(Response{Direction: Encrypt, Text: [2]uint64{e.y, e.x}})
		}

	case DecKeyPrepare:
		copy(e.window, e.req.Key)
		// The warm-up runs the schedule forward; only the true decrypt
		// pass walks the sequence backward.
		e.seq.Reset(Encrypt)
		e.round = 0
		e.phase = DecKeyRun

	case DecKeyRun:
		copy(e.cache, e.cache[1:])
		e.cache[e.cfg.KeyWords-1] = e.window[0]
		e.scheduleStep(Encrypt)
		if e.advanceRound() {
			e.phase = DecPrepare
		}

	case DecPrepare:
		// Key window seeded from the warm-up cache, newest round key
		// first: decryption consumes round keys in descending order.
		for i := range e.window {
			e.window[i] = e.cache[e.cfg.KeyWords-1-i]
		}
		e.x, e.y = e.req.Text[0], e.req.Text[1]
		e.seq.Reset(Decrypt)
		e.round = 0
		e.phase = DecRun

	case DecRun:
		roundKey := e.window[0]
		e.scheduleStep(Decrypt)
		e.x, e.y = roundStep(e.x, e.y, roundKey, e.cfg.WordWidth)
		if e.advanceRound() {
			e.complete(Response{Direction: Decrypt, Text: [2]uint64{e.x, e.y}})
		}
	}
}

// Response returns the completed response while in Output.
func (e *Engine) Response() (Response, bool) {
	if e.phase != Output {
		return Response{}, false
	}
	return e.resp, true
}

// Accept signals that the caller has taken the response, releasing the
// engine back to Idle. Key material is wiped on release.
func (e *Engine) Accept() error {
	if e.phase != Output {
		return ErrNoResponse
	}
	for i := range e.window {
		e.window[i] = 0
		e.cache[i] = 0
	}
	for i := range e.req.Key {
		e.req.Key[i] = 0
	}
	e.req = Request{}
	e.phase = Idle
	return nil
}

// scheduleStep consumes one sequence bit and shifts the key window.
func (e *Engine) scheduleStep(dir Direction) {
	roundConstant := e.cfg.constBase ^ e.seq.Advance()
	next := keyScheduleWord(e.cfg, e.window, dir, roundConstant)
	copy(e.window, e.window[1:])
	e.window[e.cfg.KeyWords-1] = next
}

// advanceRound bumps the run counter, reporting true on the final step.
func (e *Engine) advanceRound() bool {
	if e.round == e.cfg.Rounds-1 {
		return true
	}
	e.round++
	return false
}

func (e *Engine) complete(resp Response) {
	e.resp = resp
	e.phase = Output
}
