// Package fsm implements the control logic of a single elevator car as a
// synchronous state machine.
//
// A request is served to completion before Request returns: the car moves
// one floor at a time towards the destination, opens and closes its doors,
// and comes back to Idle. Every step is reported to a Notifier.
package fsm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"elevator-fsm/pkg/elev"
	"elevator-fsm/pkg/logger"
)

// ErrInvalidState is returned when a request arrives while another one is
// still being served.
var ErrInvalidState = errors.New("elevator is not idle")

const DefaultStartFloor = 1

// stateFn represents the state of the elevator as a function that
// returns the next state.
type stateFn func(*Elevator) stateFn

// Elevator holds the state of the elevator.
type Elevator struct {
	mu      sync.Mutex
	state   elev.State
	floor   int
	dest    int
	hasDest bool
	busy    bool
	served  uint64

	notifier elev.Notifier
	pacer    Pacer
	timing   Timing

	// Valid while a request is being served.
	ctx context.Context
	id  uuid.UUID
	err error
}

type Option func(*Elevator)

func WithStartFloor(floor int) Option {
	return func(e *Elevator) { e.floor = floor }
}

// WithNotifier sets the sink for events. A nil notifier discards them.
func WithNotifier(n elev.Notifier) Option {
	return func(e *Elevator) { e.notifier = n }
}

func WithPacer(p Pacer) Option {
	return func(e *Elevator) { e.pacer = p }
}

func WithTiming(t Timing) Option {
	return func(e *Elevator) { e.timing = t }
}

// New returns an idle elevator at DefaultStartFloor, paced in wall-clock
// time with DefaultTiming, unless options say otherwise.
func New(opts ...Option) *Elevator {
	e := &Elevator{
		state:  elev.Idle,
		floor:  DefaultStartFloor,
		pacer:  TimerPacer{},
		timing: DefaultTiming,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pacer == nil {
		e.pacer = NoPacer{}
	}
	return e
}

// Snapshot is a consistent copy of the elevator state.
type Snapshot struct {
	State       elev.State
	Floor       int
	Destination *int // nil while idle
	Served      uint64
}

func (e *Elevator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{State: e.state, Floor: e.floor, Served: e.served}
	if e.hasDest {
		dest := e.dest
		s.Destination = &dest
	}
	return s
}

func (e *Elevator) State() elev.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Elevator) Floor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.floor
}

// Request serves floor and returns once the car is idle again.
func (e *Elevator) Request(floor int) error {
	return e.RequestContext(context.Background(), floor)
}

// RequestContext is Request with cancellation. When ctx is done the car
// stops at the floor it has reached, cycles its doors without pausing and
// returns to Idle; the returned error is then ctx.Err().
func (e *Elevator) RequestContext(ctx context.Context, floor int) error {
	e.mu.Lock()
	if e.busy || e.state != elev.Idle {
		state := e.state
		e.mu.Unlock()
		return fmt.Errorf("request floor %d in state %v: %w", floor, state, ErrInvalidState)
	}
	e.busy = true
	e.dest = floor
	e.hasDest = true
	e.ctx = ctx
	e.id = uuid.New()
	e.err = nil
	e.mu.Unlock()

	logger.Get().Debug().
		Str("request", e.id.String()).
		Int("from", e.floor).
		Int("to", floor).
		Msg("request accepted")

	e.emit(elev.RequestStarted, floor)
	for state := dispatch; state != nil; {
		state = state(e)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.err
	e.busy = false
	e.served++
	e.ctx = nil
	e.err = nil
	return err
}

func dispatch(e *Elevator) stateFn {
	switch elev.DirectionTo(e.floor, e.dest) {
	case elev.Up:
		return movingUp
	case elev.Down:
		return movingDown
	}
	return openDoors
}

func movingUp(e *Elevator) stateFn {
	e.setState(elev.MovingUp)
	return e.move(elev.Up)
}

func movingDown(e *Elevator) stateFn {
	e.setState(elev.MovingDown)
	return e.move(elev.Down)
}

// move steps one floor at a time until the destination is reached. The
// destination lies in direction dir, so the car can never overshoot.
func (e *Elevator) move(dir elev.Direction) stateFn {
	for e.floor != e.dest {
		if !e.pause(e.timing.FloorTravel) {
			e.mu.Lock()
			e.dest = e.floor
			e.mu.Unlock()
			break
		}
		e.mu.Lock()
		e.floor += int(dir)
		e.mu.Unlock()
		e.emit(elev.FloorReached, e.floor)
	}
	return openDoors
}

func openDoors(e *Elevator) stateFn {
	e.setState(elev.OpenDoors)
	e.emit(elev.DoorsOpening, e.floor)
	e.pause(e.timing.DoorOpen)
	return closeDoors
}

// closeDoors always ends the cycle. Further requests must come from the
// caller.
func closeDoors(e *Elevator) stateFn {
	e.setState(elev.CloseDoors)
	e.emit(elev.DoorsClosing, e.floor)
	e.pause(e.timing.DoorClose)

	e.mu.Lock()
	e.hasDest = false
	e.mu.Unlock()
	e.setState(elev.Idle)
	e.emit(elev.BecameIdle, e.floor)
	return nil
}

func (e *Elevator) setState(s elev.State) {
	e.mu.Lock()
	prev := e.state
	e.state = s
	e.mu.Unlock()

	logger.Get().Debug().
		Str("request", e.id.String()).
		Stringer("from", prev).
		Stringer("to", s).
		Int("floor", e.floor).
		Msg("transition")
}

// pause holds the current state for d. It reports false once the request
// has been cancelled; after that no further pauses take place.
func (e *Elevator) pause(d time.Duration) bool {
	if e.err != nil {
		return false
	}
	if err := e.pacer.Pause(e.ctx, d); err != nil {
		e.err = err
		logger.Get().Warn().
			Err(err).
			Str("request", e.id.String()).
			Int("floor", e.floor).
			Msg("request cancelled")
		return false
	}
	return true
}

func (e *Elevator) emit(kind elev.EventKind, floor int) {
	if e.notifier == nil {
		return
	}
	e.notifier.Notify(elev.Event{Kind: kind, Floor: floor, Request: e.id})
}
