package menu

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidInput indicates the typed option is not an integer.
var ErrInvalidInput = errors.New("invalid input")

// Option is a numbered menu entry.
type Option int

// Known menu options
const (
	OptSelectFlavor   Option = 1
	OptPlaceOrder     Option = 2
	OptPrepareOrder   Option = 3
	OptMakeIceCream   Option = 4
	OptFinishIceCream Option = 5
	OptPickupOrder    Option = 6
	OptCancelOrder    Option = 7
	OptExit           Option = 9
)

// Options lists the menu entries in display order.
var Options = []Option{
	OptSelectFlavor,
	OptPlaceOrder,
	OptPrepareOrder,
	OptMakeIceCream,
	OptFinishIceCream,
	OptPickupOrder,
	OptCancelOrder,
	OptExit,
}

// Parse extracts an option number from a line of input.
// Returns ErrInvalidInput if the line is not an integer.
func Parse(input string) (Option, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidInput
	}
	return Option(n), nil
}

// IsValid returns true if the option is on the menu.
func (o Option) IsValid() bool {
	for _, opt := range Options {
		if opt == o {
			return true
		}
	}
	return false
}

// Label returns the menu text for the option.
func (o Option) Label() string {
	switch o {
	case OptSelectFlavor:
		return "Select Flavor"
	case OptPlaceOrder:
		return "Place Order (Check Inventory)"
	case OptPrepareOrder:
		return "Prepare Order"
	case OptMakeIceCream:
		return "Make Ice Cream"
	case OptFinishIceCream:
		return "Finish Ice Cream"
	case OptPickupOrder:
		return "Pickup Order"
	case OptCancelOrder:
		return "Cancel Order"
	case OptExit:
		return "Exit"
	default:
		return ""
	}
}
