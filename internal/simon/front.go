package simon

import "errors"

var (
	// ErrBadTicket is returned by Collect for a ticket that does not
	// belong to the in-flight operation.
	ErrBadTicket = errors.New("simon: ticket does not match the in-flight operation")
	// ErrNotReady is returned by Collect before the response is complete.
	ErrNotReady = errors.New("simon: operation still running")
)

// Ticket is the completion token handed out when a request is accepted.
// Only the holder of the current ticket may collect the response. The zero
// Ticket never matches.
type Ticket struct {
	serial uint64
}

// Front is the ready/valid facade over a single engine. It holds at most
// one in-flight operation and pairs every accepted request with a Ticket,
// making the "request owned by the engine until completion" contract
// explicit instead of relying on the caller to hold values stable.
type Front struct {
	eng    *Engine
	serial uint64
	ticket Ticket
}

// NewFront builds a front over a fresh engine for the given configuration.
func NewFront(wordWidth, keyWords int) (*Front, error) {
	eng, err := NewEngine(wordWidth, keyWords)
	if err != nil {
		return nil, err
	}
	return &Front{eng: eng}, nil
}

// Engine exposes the underlying engine for step-level inspection.
func (f *Front) Engine() *Engine { return f.eng }

// Ready reports whether the front can accept a new request.
func (f *Front) Ready() bool { return !f.eng.Busy() }

// Submit hands a request to the engine. On acceptance the request is copied
// and a completion ticket is returned; the caller's buffers are free again.
func (f *Front) Submit(req Request) (Ticket, error) {
	if err := f.eng.Submit(req); err != nil {
		return Ticket{}, err
	}
	f.serial++
	f.ticket = Ticket{serial: f.serial}
	return f.ticket, nil
}

// Step advances the engine one logical step.
func (f *Front) Step() { f.eng.Step() }

// Done reports whether the in-flight operation has reached Output.
func (f *Front) Done() bool {
	_, ok := f.eng.Response()
	return ok
}

// Collect returns the completed response for the given ticket and releases
// the engine. The response is unaffected by how many steps elapsed since
// Output was reached.
func (f *Front) Collect(t Ticket) (Response, error) {
	if t == (Ticket{}) || t != f.ticket {
		return Response{}, ErrBadTicket
	}
	resp, ok := f.eng.Response()
	if !ok {
		return Response{}, ErrNotReady
	}
	if err := f.eng.Accept(); err != nil {
		return Response{}, err
	}
	f.ticket = Ticket{}
	return resp, nil
}

// Run submits a request and steps the engine to completion. Convenience
// for callers that do not need step-level control.
func (f *Front) Run(req Request) (Response, error) {
	t, err := f.Submit(req)
	if err != nil {
		return Response{}, err
	}
	for !f.Done() {
		f.Step()
	}
	return f.Collect(t)
}
