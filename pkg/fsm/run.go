package fsm

import (
	"context"
	"fmt"
)

// Run requests each floor in order, waiting for every request to finish
// before issuing the next. It stops at the first error.
func Run(ctx context.Context, e *Elevator, floors []int) error {
	for i, floor := range floors {
		if err := e.RequestContext(ctx, floor); err != nil {
			return fmt.Errorf("request %d (floor %d): %w", i, floor, err)
		}
	}
	return nil
}
