// Package fsm adapts looplab/fsm callbacks to error-returning functions.
package fsm

import (
	"context"

	"github.com/looplab/fsm"
)

// WrapEvent lifts an error-returning callback into a fsm.Callback, storing
// the error on the event so Event() surfaces it to the caller.
func WrapEvent(fn func(ctx context.Context, event *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, event *fsm.Event) {
		if err := fn(ctx, event); err != nil {
			event.Err = err
		}
	}
}
