package fsm

import (
	"context"
	"time"
)

// Timing is the time the car spends in each paced step. It only affects
// how long a request takes, never which states are visited.
type Timing struct {
	FloorTravel time.Duration // per floor
	DoorOpen    time.Duration
	DoorClose   time.Duration
}

var DefaultTiming = Timing{
	FloorTravel: 1 * time.Second,
	DoorOpen:    2 * time.Second,
	DoorClose:   2 * time.Second,
}

// A Pacer holds the elevator in its current state for d. A non-nil error
// cancels the rest of the request.
type Pacer interface {
	Pause(ctx context.Context, d time.Duration) error
}

// PacerFunc adapts an ordinary function to the Pacer interface.
type PacerFunc func(ctx context.Context, d time.Duration) error

func (f PacerFunc) Pause(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerPacer waits in wall-clock time.
type TimerPacer struct{}

func (TimerPacer) Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoPacer never waits. Cancellation is still honoured.
type NoPacer struct{}

func (NoPacer) Pause(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
