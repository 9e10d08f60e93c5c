package fsm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/looplab/fsm"
)

// Transition describes a single move through the order lifecycle.
type Transition struct {
	Event string
	Src   string
	Dst   string
}

// BeforeHook runs ahead of a transition. A non-nil error vetoes it and the
// machine stays in Src.
type BeforeHook func(ctx context.Context, t Transition) error

// AfterHook runs once the destination state is committed.
type AfterHook func(ctx context.Context, t Transition)

var orderEvents = fsm.Events{
	{Name: OrderEventSelectFlavor, Src: []string{OrderStateCheckout}, Dst: OrderStateSelectFlavor},
	{Name: OrderEventCheckInventory, Src: []string{OrderStateSelectFlavor}, Dst: OrderStatePlacedOrder},
	{Name: OrderEventPrepareOrder, Src: []string{OrderStatePlacedOrder}, Dst: OrderStatePreparingOrder},
	{Name: OrderEventMakeIceCream, Src: []string{OrderStatePreparingOrder}, Dst: OrderStateMakingOrder},
	{Name: OrderEventFinishIceCream, Src: []string{OrderStateMakingOrder}, Dst: OrderStateReadyForPickup},
	{Name: OrderEventPickupOrder, Src: []string{OrderStateReadyForPickup}, Dst: OrderStateCompleted},
	{Name: OrderEventCancelOrder, Src: []string{OrderStateSelectFlavor, OrderStatePlacedOrder}, Dst: OrderStateCheckout},
}

type OrderStateMachine struct {
	fsm    *fsm.FSM
	mu     sync.Mutex
	before map[string][]BeforeHook
	after  map[string][]AfterHook
}

func NewOrderStateMachine() *OrderStateMachine {
	osm := &OrderStateMachine{
		before: make(map[string][]BeforeHook),
		after:  make(map[string][]AfterHook),
	}
	osm.fsm = fsm.NewFSM(
		OrderStateCheckout,
		orderEvents,
		fsm.Callbacks{
			"before_event": func(ctx context.Context, e *fsm.Event) {
				t := Transition{Event: e.Event, Src: e.Src, Dst: e.Dst}
				for _, fn := range osm.before[e.Event] {
					if err := fn(ctx, t); err != nil {
						e.Cancel(err)
						return
					}
				}
			},
			"after_event": func(ctx context.Context, e *fsm.Event) {
				t := Transition{Event: e.Event, Src: e.Src, Dst: e.Dst}
				for _, fn := range osm.after[e.Event] {
					fn(ctx, t)
				}
			},
		},
	)
	return osm
}

// Before appends a hook run ahead of every transition triggered by event.
// Hooks run in registration order and must not call back into the machine.
func (osm *OrderStateMachine) Before(event string, fn BeforeHook) {
	osm.mu.Lock()
	defer osm.mu.Unlock()
	osm.before[event] = append(osm.before[event], fn)
}

// After appends a hook run after every committed transition triggered by event.
func (osm *OrderStateMachine) After(event string, fn AfterHook) {
	osm.mu.Lock()
	defer osm.mu.Unlock()
	osm.after[event] = append(osm.after[event], fn)
}

func (osm *OrderStateMachine) Current() string {
	osm.mu.Lock()
	defer osm.mu.Unlock()
	return osm.fsm.Current()
}

func (osm *OrderStateMachine) Can(event string) bool {
	osm.mu.Lock()
	defer osm.mu.Unlock()
	return osm.fsm.Can(event)
}

// Fire moves the machine along event and returns the new state. On any
// failure the current state is left untouched: an event outside the current
// state's source set yields *InvalidTransitionError, and a vetoing before
// hook's error is returned wrapped.
func (osm *OrderStateMachine) Fire(ctx context.Context, event string) (string, error) {
	osm.mu.Lock()
	defer osm.mu.Unlock()

	err := osm.fsm.Event(ctx, event)
	if err == nil {
		return osm.fsm.Current(), nil
	}

	var invalidErr fsm.InvalidEventError
	if errors.As(err, &invalidErr) {
		return osm.fsm.Current(), &InvalidTransitionError{Event: invalidErr.Event, State: invalidErr.State}
	}

	var unknownErr fsm.UnknownEventError
	if errors.As(err, &unknownErr) {
		return osm.fsm.Current(), fmt.Errorf("%w: %s", ErrUnknownEvent, unknownErr.Event)
	}

	var canceledErr fsm.CanceledError
	if errors.As(err, &canceledErr) && canceledErr.Err != nil {
		return osm.fsm.Current(), fmt.Errorf("%s blocked: %w", event, canceledErr.Err)
	}

	return osm.fsm.Current(), err
}

func (osm *OrderStateMachine) AvailableEvents() []string {
	osm.mu.Lock()
	defer osm.mu.Unlock()
	return osm.fsm.AvailableTransitions()
}
