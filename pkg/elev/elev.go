// Package elev holds the vocabulary shared by the elevator controller and
// the sinks that observe it.
package elev

import (
	"fmt"

	"github.com/google/uuid"
)

type Direction int

const (
	Down Direction = -1
	Stop Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Stop:
		return "stop"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionTo returns the direction the car must travel from floor to dest.
func DirectionTo(floor, dest int) Direction {
	switch {
	case dest > floor:
		return Up
	case dest < floor:
		return Down
	}
	return Stop
}

// State is the operating mode of the car. Exactly one holds at a time.
type State int

const (
	Idle State = iota
	MovingUp
	MovingDown
	OpenDoors
	CloseDoors
)

var stateNames = [...]string{
	Idle:       "IDLE",
	MovingUp:   "MOVING_UP",
	MovingDown: "MOVING_DOWN",
	OpenDoors:  "OPEN_DOORS",
	CloseDoors: "CLOSE_DOORS",
}

func (s State) String() string {
	if s.Valid() {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) Valid() bool {
	return s >= Idle && s <= CloseDoors
}

// Moving reports whether the car is travelling between floors.
func (s State) Moving() bool {
	return s == MovingUp || s == MovingDown
}

type EventKind int

const (
	// RequestStarted is emitted once per request before any transition.
	// It is not part of the observable movement sequence.
	RequestStarted EventKind = iota
	FloorReached
	DoorsOpening
	DoorsClosing
	BecameIdle
)

var eventNames = [...]string{
	RequestStarted: "RequestStarted",
	FloorReached:   "FloorReached",
	DoorsOpening:   "DoorsOpening",
	DoorsClosing:   "DoorsClosing",
	BecameIdle:     "BecameIdle",
}

func (k EventKind) String() string {
	if k >= RequestStarted && k <= BecameIdle {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a single observable step of the controller. Floor is the car's
// floor when the event was emitted, except for RequestStarted where it is
// the requested floor.
type Event struct {
	Kind    EventKind
	Floor   int
	Request uuid.UUID
}

// Core reports whether e belongs to the movement/door sequence.
func (e Event) Core() bool {
	return e.Kind != RequestStarted
}

func (e Event) String() string {
	if e.Kind == FloorReached || e.Kind == RequestStarted {
		return fmt.Sprintf("%v(%d)", e.Kind, e.Floor)
	}
	return e.Kind.String()
}

// A Notifier receives every event the controller emits, in order, on the
// goroutine that called Request.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) {
	f(e)
}
