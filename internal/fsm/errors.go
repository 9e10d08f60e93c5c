package fsm

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition matches any InvalidTransitionError via errors.Is.
var ErrInvalidTransition = errors.New("invalid order state transition")

// ErrUnknownEvent indicates the event is not part of the order lifecycle.
var ErrUnknownEvent = errors.New("unknown order event")

// InvalidTransitionError reports an event fired from a state outside its source set.
type InvalidTransitionError struct {
	Event string
	State string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("event %s inappropriate in current state %s", e.Event, e.State)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
