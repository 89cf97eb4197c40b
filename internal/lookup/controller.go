package lookup

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/consultacep/internal/cep"
	"github.com/muurk/consultacep/internal/logging"
	"github.com/muurk/consultacep/internal/viacep"
)

// DefaultTimeout bounds a lookup so it can never stay Pending forever
const DefaultTimeout = 10 * time.Second

// Resolver resolves a complete CEP to an address.
// *viacep.Client implements it.
type Resolver interface {
	Lookup(ctx context.Context, code cep.CEP) (*viacep.Address, error)
}

// Session is the edit state of the form
type Session struct {
	RawInput string
	CEP      cep.CEP
}

// Ticket identifies a submitted lookup. It is handed to Fetch, possibly on
// another goroutine.
type Ticket struct {
	Generation uint64
	CEP        cep.CEP

	ctx    context.Context
	cancel context.CancelFunc
}

// Outcome is the result of Fetch, applied with Resolve
type Outcome struct {
	Generation uint64
	CEP        cep.CEP
	Address    *viacep.Address
	Err        error
}

// Controller owns the session and the QueryState.
// State changes only through Input, Submit, Resolve and Reset.
type Controller struct {
	resolver Resolver
	timeout  time.Duration

	mu         sync.Mutex
	session    Session
	state      State
	generation uint64
	cancel     context.CancelFunc
}

// New creates a controller in the Idle state
func New(resolver Resolver) *Controller {
	return &Controller{
		resolver: resolver,
		timeout:  DefaultTimeout,
	}
}

// SetTimeout sets the bound applied to each lookup. Zero or negative
// values restore DefaultTimeout.
func (c *Controller) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.timeout = timeout
}

// Timeout returns the per-lookup bound
func (c *Controller) Timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

// State returns the current QueryState
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the current raw input and normalized CEP
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Input is the text-change handler. It stores the raw text and returns
// the normalized CEP; the QueryState is left untouched.
func (c *Controller) Input(raw string) cep.CEP {
	code := cep.Normalize(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = Session{RawInput: raw, CEP: code}
	return code
}

// Submit starts a lookup for the session CEP.
//
// It returns false, leaving everything as is, while another lookup is
// Pending. An incomplete CEP moves straight to Failed(InvalidFormat) and
// also returns false; no request is made. Otherwise the state becomes
// Pending and the returned Ticket must be passed to Fetch.
func (c *Controller) Submit(parent context.Context) (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == Pending {
		logging.Debug("Lookup rejected, another one is pending",
			zap.Uint64("generation", c.generation),
		)
		return Ticket{}, false
	}

	code := c.session.CEP
	c.generation++

	if !code.IsComplete() {
		c.state = State{Phase: Failed, Kind: InvalidFormat, Generation: c.generation}
		logging.Debug("Lookup refused, incomplete CEP",
			zap.String("cep", code.Display()),
			zap.Int("digits", code.Len()),
		)
		return Ticket{}, false
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	c.cancel = cancel
	c.state = State{Phase: Pending, Generation: c.generation}

	logging.LogLookup(code.Digits(), c.generation)

	return Ticket{
		Generation: c.generation,
		CEP:        code,
		ctx:        ctx,
		cancel:     cancel,
	}, true
}

// Fetch performs the single request for t. It does not touch the
// controller state and is safe to call from another goroutine.
func (c *Controller) Fetch(t Ticket) Outcome {
	ctx, cancel := t.ctx, t.cancel
	if ctx == nil {
		ctx, cancel = context.WithTimeout(context.Background(), c.Timeout())
	}
	defer cancel()

	addr, err := c.resolver.Lookup(ctx, t.CEP)
	return Outcome{
		Generation: t.Generation,
		CEP:        t.CEP,
		Address:    addr,
		Err:        err,
	}
}

// Resolve applies o if it belongs to the current lookup and reports
// whether it did. Outcomes from before a Reset or a newer Submit are
// discarded.
func (c *Controller) Resolve(o Outcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if o.Generation != c.generation || c.state.Phase != Pending {
		logging.Debug("Discarding stale lookup outcome",
			zap.Uint64("outcome_generation", o.Generation),
			zap.Uint64("current_generation", c.generation),
		)
		return false
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.state = stateFor(o)
	logging.LogOutcome(o.CEP.Digits(), o.Generation, c.state.Phase.String(), c.state.Kind.String(), o.Err)
	return true
}

// Lookup runs Submit, Fetch and Resolve in sequence and returns the
// resulting state. Used where no event loop exists (CLI, HTTP).
func (c *Controller) Lookup(ctx context.Context) State {
	t, ok := c.Submit(ctx)
	if !ok {
		return c.State()
	}
	c.Resolve(c.Fetch(t))
	return c.State()
}

// Reset clears the session and returns to Idle from any state. An
// in-flight request is cancelled and its outcome will be discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.generation++
	c.session = Session{}
	c.state = State{Phase: Idle, Generation: c.generation}
}

// stateFor maps a fetch outcome to its QueryState
func stateFor(o Outcome) State {
	switch {
	case o.Err == nil && o.Address != nil:
		return State{Phase: Success, Address: o.Address, Generation: o.Generation}
	case errors.Is(o.Err, viacep.ErrNotFound):
		return State{Phase: Failed, Kind: NotFound, Err: o.Err, Generation: o.Generation}
	case errors.Is(o.Err, viacep.ErrInvalidCEP):
		return State{Phase: Failed, Kind: InvalidFormat, Err: o.Err, Generation: o.Generation}
	case o.Err == nil:
		return State{Phase: Failed, Kind: NetworkError, Err: errors.New("empty response"), Generation: o.Generation}
	default:
		return State{Phase: Failed, Kind: NetworkError, Err: o.Err, Generation: o.Generation}
	}
}
