package notify

import (
	"fmt"
	"io"

	"elevator-fsm/pkg/elev"
)

// Console writes events as human readable lines.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(e elev.Event) {
	switch e.Kind {
	case elev.RequestStarted:
		fmt.Fprintf(c.w, "Requesting floor %d\n", e.Floor)
	case elev.FloorReached:
		fmt.Fprintf(c.w, "Elevator at floor %d\n", e.Floor)
	case elev.DoorsOpening:
		fmt.Fprintln(c.w, "Doors are opening...")
	case elev.DoorsClosing:
		fmt.Fprintln(c.w, "Doors are closing...")
	case elev.BecameIdle:
		fmt.Fprintln(c.w, "Elevator is now idle.")
	}
}
