// Package notify provides sinks for the events emitted by the elevator
// controller.
package notify

import (
	"sync"

	"elevator-fsm/pkg/elev"
)

// Recorder keeps every event it receives. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []elev.Event
}

func (r *Recorder) Notify(e elev.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []elev.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]elev.Event(nil), r.events...)
}

// Kinds returns the kinds of the recorded movement and door events.
func (r *Recorder) Kinds() []elev.EventKind {
	var kinds []elev.EventKind
	for _, e := range r.Events() {
		if e.Core() {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

// Floors returns the floors of the recorded FloorReached events.
func (r *Recorder) Floors() []int {
	var floors []int
	for _, e := range r.Events() {
		if e.Kind == elev.FloorReached {
			floors = append(floors, e.Floor)
		}
	}
	return floors
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Chan forwards events on C. Sends block, so the receiver paces the
// elevator.
type Chan struct {
	C chan elev.Event
}

func NewChan(size int) *Chan {
	return &Chan{C: make(chan elev.Event, size)}
}

func (c *Chan) Notify(e elev.Event) {
	c.C <- e
}

// Multi hands each event to every notifier in order.
type Multi []elev.Notifier

func (m Multi) Notify(e elev.Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(e)
		}
	}
}
