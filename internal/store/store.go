package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/buildtall-systems/scoopshop/internal/fsm"
)

// Result holds the outcome of a customer action.
type Result struct {
	Message string
	Error   error
}

// Selection is the flavor and size picked for the current order.
type Selection struct {
	Flavor string
	Size   string
}

// Store runs a single order through the ice cream shop lifecycle and keeps
// flavor inventory. It is not safe for concurrent use.
type Store struct {
	order     *fsm.OrderStateMachine
	inventory *Inventory
	recipes   Recipes
	selected  Selection
	out       io.Writer
	logger    *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithStock replaces the opening inventory.
func WithStock(stock map[string]float64) Option {
	return func(s *Store) {
		s.inventory = NewInventory(stock)
	}
}

// WithOutput sets where hook status lines are written.
func WithOutput(w io.Writer) Option {
	return func(s *Store) {
		s.out = w
	}
}

// WithLogger enables transition logging.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		order:     fsm.NewOrderStateMachine(),
		inventory: NewInventory(DefaultStock()),
		recipes:   DefaultRecipes(),
		out:       io.Discard,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.order.After(fsm.OrderEventSelectFlavor, func(context.Context, fsm.Transition) {
		fmt.Fprintln(s.out, "Ready to select flavor.")
	})
	s.order.Before(fsm.OrderEventCheckInventory, func(context.Context, fsm.Transition) error {
		fmt.Fprintln(s.out, "Checking inventory...")
		return s.ensureInventory()
	})
	s.order.After(fsm.OrderEventCheckInventory, func(context.Context, fsm.Transition) {
		fmt.Fprintln(s.out, "Order placed.")
	})
	for _, event := range fsm.OrderEvents {
		s.order.After(event, func(_ context.Context, t fsm.Transition) {
			s.logger.Printf("order %s: %s -> %s", t.Event, t.Src, t.Dst)
		})
	}

	return s
}

// State returns the current order state.
func (s *Store) State() string {
	return s.order.Current()
}

// Selection returns the flavor and size recorded for the current order.
func (s *Store) Selection() Selection {
	return s.selected
}

// Inventory returns a copy of the remaining stock per flavor.
func (s *Store) Inventory() map[string]float64 {
	return s.inventory.Snapshot()
}

// Flavors returns the stocked flavor names.
func (s *Store) Flavors() []string {
	return s.inventory.Flavors()
}

// AvailableEvents returns the events that can fire from the current state.
func (s *Store) AvailableEvents() []string {
	return s.order.AvailableEvents()
}

// SelectFlavor starts an order for flavor in size.
func (s *Store) SelectFlavor(ctx context.Context, flavor, size string) Result {
	if err := s.fire(ctx, "select flavor", fsm.OrderEventSelectFlavor); err != nil {
		return Result{Error: err}
	}
	s.selected = Selection{Flavor: flavor, Size: size}
	return Result{Message: fmt.Sprintf("Selected flavor: %s, Size: %s", flavor, size)}
}

// CheckInventory places the order if enough of flavor is left for size and
// deducts the recipe quantity. The selection is recorded before the
// transition is attempted so the inventory guard can see it.
func (s *Store) CheckInventory(ctx context.Context, flavor, size string) Result {
	s.selected = Selection{Flavor: flavor, Size: size}

	if err := s.fire(ctx, "place order", fsm.OrderEventCheckInventory); err != nil {
		if errors.Is(err, ErrInsufficientInventory) || errors.Is(err, ErrUnknownSize) {
			return Result{Error: fmt.Errorf("order could not be placed: %w", err)}
		}
		return Result{Error: err}
	}

	required, err := s.recipes.Required(size)
	if err != nil {
		return Result{Error: fmt.Errorf("order could not be placed: %w", err)}
	}
	if err := s.inventory.Deduct(flavor, required); err != nil {
		return Result{Error: fmt.Errorf("order could not be placed: %w", err)}
	}

	return Result{Message: fmt.Sprintf("Order placed! Remaining %s inventory: %s lbs.", flavor, formatQty(s.inventory.Available(flavor)))}
}

func (s *Store) PrepareOrder(ctx context.Context) Result {
	if err := s.fire(ctx, "prepare order", fsm.OrderEventPrepareOrder); err != nil {
		return Result{Error: err}
	}
	return Result{Message: "Preparing the order..."}
}

func (s *Store) MakeIceCream(ctx context.Context) Result {
	if err := s.fire(ctx, "make ice cream", fsm.OrderEventMakeIceCream); err != nil {
		return Result{Error: err}
	}
	return Result{Message: "Making the ice cream..."}
}

func (s *Store) FinishIceCream(ctx context.Context) Result {
	if err := s.fire(ctx, "finish ice cream", fsm.OrderEventFinishIceCream); err != nil {
		return Result{Error: err}
	}
	return Result{Message: "Ice cream is ready for pickup."}
}

func (s *Store) PickupOrder(ctx context.Context) Result {
	if err := s.fire(ctx, "pickup order", fsm.OrderEventPickupOrder); err != nil {
		return Result{Error: err}
	}
	return Result{Message: "Order completed. Enjoy your ice cream!"}
}

// CancelOrder returns an order that has not started preparation to checkout
// and clears the selection. Inventory already deducted is not restored.
func (s *Store) CancelOrder(ctx context.Context) Result {
	if err := s.fire(ctx, "cancel order", fsm.OrderEventCancelOrder); err != nil {
		return Result{Error: err}
	}
	s.selected = Selection{}
	return Result{Message: "Order cancelled."}
}

// ensureInventory fails when the selected flavor cannot cover the selected size.
func (s *Store) ensureInventory() error {
	required, err := s.recipes.Required(s.selected.Size)
	if err != nil {
		return err
	}
	if !s.inventory.HasEnough(s.selected.Flavor, required) {
		return fmt.Errorf("%w: %s has %s, need %s", ErrInsufficientInventory,
			s.selected.Flavor, formatQty(s.inventory.Available(s.selected.Flavor)), formatQty(required))
	}
	return nil
}

func (s *Store) fire(ctx context.Context, action, event string) error {
	if _, err := s.order.Fire(ctx, event); err != nil {
		if errors.Is(err, fsm.ErrInvalidTransition) {
			return fmt.Errorf("could not %s in %s state: %w", action, s.order.Current(), err)
		}
		return err
	}
	return nil
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
