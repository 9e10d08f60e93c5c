package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/buildtall-systems/scoopshop/internal/store"
)

// Menu drives a Store from numbered choices read line by line.
type Menu struct {
	store *store.Store
	in    *bufio.Reader
	out   io.Writer
}

func New(s *store.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: s,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run loops until exit is chosen, input ends, or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show()
		line, err := m.prompt("Enter your option: ")
		if err != nil {
			return endOfInput(err)
		}

		opt, err := Parse(line)
		if errors.Is(err, ErrInvalidInput) {
			fmt.Fprintln(m.out, "Invalid input. Please enter a valid option.")
			continue
		}

		if !opt.IsValid() {
			fmt.Fprintln(m.out, "Invalid option. Try again.")
			continue
		}

		if opt == OptExit {
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		}

		result, err := m.Execute(ctx, opt)
		if err != nil {
			return endOfInput(err)
		}
		if result.Error != nil {
			fmt.Fprintf(m.out, "Error: %v\n", result.Error)
			continue
		}
		fmt.Fprintln(m.out, result.Message)
	}
}

// Execute runs the store action behind opt. It returns an error only if
// reading the action's arguments failed.
func (m *Menu) Execute(ctx context.Context, opt Option) (store.Result, error) {
	switch opt {
	case OptSelectFlavor:
		flavor, err := m.prompt(fmt.Sprintf("Select your flavor (%s): ", strings.Join(m.store.Flavors(), ", ")))
		if err != nil {
			return store.Result{}, err
		}
		size, err := m.prompt("Select size (large, medium, small): ")
		if err != nil {
			return store.Result{}, err
		}
		return m.store.SelectFlavor(ctx, flavor, size), nil

	case OptPlaceOrder:
		sel := m.store.Selection()
		return m.store.CheckInventory(ctx, sel.Flavor, sel.Size), nil

	case OptPrepareOrder:
		return m.store.PrepareOrder(ctx), nil

	case OptMakeIceCream:
		return m.store.MakeIceCream(ctx), nil

	case OptFinishIceCream:
		return m.store.FinishIceCream(ctx), nil

	case OptPickupOrder:
		return m.store.PickupOrder(ctx), nil

	case OptCancelOrder:
		return m.store.CancelOrder(ctx), nil

	default:
		return store.Result{Error: fmt.Errorf("option %d is not on the menu", opt)}, nil
	}
}

func (m *Menu) show() {
	fmt.Fprintln(m.out, "\n=== MENU ===")
	for _, opt := range Options {
		fmt.Fprintf(m.out, "%d. %s\n", opt, opt.Label())
	}
}

// prompt reads one line of any length. A final line without a newline is
// still returned; io.EOF is reported only once nothing is left.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}
