package store

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtall-systems/scoopshop/internal/fsm"
)

func TestNew_StartsAtCheckout(t *testing.T) {
	s := New()

	assert.Equal(t, fsm.OrderStateCheckout, s.State())
	assert.Equal(t, Selection{}, s.Selection())
	assert.Equal(t, map[string]float64{"Vanilla": 5, "Chocolate": 2, "Strawberry": 1}, s.Inventory())
	assert.Equal(t, []string{"Chocolate", "Strawberry", "Vanilla"}, s.Flavors())
}

func TestStore_SelectFlavor(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	s := New(WithOutput(&out))

	result := s.SelectFlavor(ctx, "Vanilla", "large")
	require.NoError(t, result.Error)
	assert.Equal(t, "Selected flavor: Vanilla, Size: large", result.Message)
	assert.Equal(t, fsm.OrderStateSelectFlavor, s.State())
	assert.Equal(t, Selection{Flavor: "Vanilla", Size: "large"}, s.Selection())
	assert.Equal(t, "Ready to select flavor.\n", out.String())

	// A second selection is out of order and keeps the first one.
	result = s.SelectFlavor(ctx, "Chocolate", "small")
	require.ErrorIs(t, result.Error, fsm.ErrInvalidTransition)
	assert.Equal(t, Selection{Flavor: "Vanilla", Size: "large"}, s.Selection())
}

func TestStore_CheckInventory_DeductsRecipe(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	s := New(WithOutput(&out))

	require.NoError(t, s.SelectFlavor(ctx, "Vanilla", "large").Error)
	out.Reset()

	result := s.CheckInventory(ctx, "Vanilla", "large")
	require.NoError(t, result.Error)
	assert.Equal(t, "Order placed! Remaining Vanilla inventory: 4 lbs.", result.Message)
	assert.Equal(t, fsm.OrderStatePlacedOrder, s.State())
	assert.Equal(t, 4.0, s.Inventory()["Vanilla"])
	assert.Equal(t, "Checking inventory...\nOrder placed.\n", out.String())
}

func TestStore_CheckInventory_ExhaustsStock(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SelectFlavor(ctx, "Strawberry", "large").Error)
	result := s.CheckInventory(ctx, "Strawberry", "large")
	require.NoError(t, result.Error)
	assert.Equal(t, 0.0, s.Inventory()["Strawberry"])

	require.NoError(t, s.CancelOrder(ctx).Error)
	require.NoError(t, s.SelectFlavor(ctx, "Strawberry", "large").Error)

	result = s.CheckInventory(ctx, "Strawberry", "large")
	require.ErrorIs(t, result.Error, ErrInsufficientInventory)
	assert.Contains(t, result.Error.Error(), "order could not be placed")
	assert.Equal(t, fsm.OrderStateSelectFlavor, s.State())
	assert.Equal(t, 0.0, s.Inventory()["Strawberry"])
	assert.Equal(t, 5.0, s.Inventory()["Vanilla"])
}

func TestStore_CheckInventory_GuardBlocksTransition(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	s := New(WithOutput(&out), WithStock(map[string]float64{"Chocolate": 0.25}))

	require.NoError(t, s.SelectFlavor(ctx, "Chocolate", "medium").Error)
	out.Reset()

	result := s.CheckInventory(ctx, "Chocolate", "medium")
	require.ErrorIs(t, result.Error, ErrInsufficientInventory)
	assert.Equal(t, fsm.OrderStateSelectFlavor, s.State())
	assert.Equal(t, 0.25, s.Inventory()["Chocolate"])
	assert.Equal(t, "Checking inventory...\n", out.String())

	// A smaller size still fits.
	result = s.CheckInventory(ctx, "Chocolate", "small")
	require.NoError(t, result.Error)
	assert.Equal(t, "Order placed! Remaining Chocolate inventory: 0 lbs.", result.Message)
}

func TestStore_CheckInventory_UnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		flavor  string
		size    string
		wantErr error
	}{
		{name: "unknown flavor", flavor: "Pistachio", size: "small", wantErr: ErrInsufficientInventory},
		{name: "unknown size", flavor: "Vanilla", size: "huge", wantErr: ErrUnknownSize},
		{name: "both unknown", flavor: "Pistachio", size: "huge", wantErr: ErrUnknownSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := New()

			require.NoError(t, s.SelectFlavor(ctx, tt.flavor, tt.size).Error)
			result := s.CheckInventory(ctx, tt.flavor, tt.size)

			require.ErrorIs(t, result.Error, tt.wantErr)
			assert.Equal(t, fsm.OrderStateSelectFlavor, s.State())
			assert.Equal(t, DefaultStock(), s.Inventory())
		})
	}
}

func TestStore_CheckInventory_RecordsSelectionEvenWhenOutOfOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	result := s.CheckInventory(ctx, "Chocolate", "small")
	require.ErrorIs(t, result.Error, fsm.ErrInvalidTransition)
	assert.Equal(t, fsm.OrderStateCheckout, s.State())
	assert.Equal(t, Selection{Flavor: "Chocolate", Size: "small"}, s.Selection())
	assert.Equal(t, DefaultStock(), s.Inventory())
}

func TestStore_FullOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	steps := []struct {
		name    string
		run     func() Result
		message string
		state   string
	}{
		{"select", func() Result { return s.SelectFlavor(ctx, "Vanilla", "medium") }, "Selected flavor: Vanilla, Size: medium", fsm.OrderStateSelectFlavor},
		{"check", func() Result { return s.CheckInventory(ctx, "Vanilla", "medium") }, "Order placed! Remaining Vanilla inventory: 4.5 lbs.", fsm.OrderStatePlacedOrder},
		{"prepare", func() Result { return s.PrepareOrder(ctx) }, "Preparing the order...", fsm.OrderStatePreparingOrder},
		{"make", func() Result { return s.MakeIceCream(ctx) }, "Making the ice cream...", fsm.OrderStateMakingOrder},
		{"finish", func() Result { return s.FinishIceCream(ctx) }, "Ice cream is ready for pickup.", fsm.OrderStateReadyForPickup},
		{"pickup", func() Result { return s.PickupOrder(ctx) }, "Order completed. Enjoy your ice cream!", fsm.OrderStateCompleted},
	}

	for _, step := range steps {
		result := step.run()
		require.NoError(t, result.Error, step.name)
		assert.Equal(t, step.message, result.Message, step.name)
		assert.Equal(t, step.state, s.State(), step.name)
	}

	assert.Empty(t, s.AvailableEvents())
}

func TestStore_OutOfOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	tests := []struct {
		name   string
		run    func() Result
		action string
	}{
		{"prepare", func() Result { return s.PrepareOrder(ctx) }, "could not prepare order in checkout state"},
		{"make", func() Result { return s.MakeIceCream(ctx) }, "could not make ice cream in checkout state"},
		{"finish", func() Result { return s.FinishIceCream(ctx) }, "could not finish ice cream in checkout state"},
		{"pickup", func() Result { return s.PickupOrder(ctx) }, "could not pickup order in checkout state"},
		{"cancel", func() Result { return s.CancelOrder(ctx) }, "could not cancel order in checkout state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.run()
			second := tt.run()

			require.ErrorIs(t, first.Error, fsm.ErrInvalidTransition)
			assert.Contains(t, first.Error.Error(), tt.action)
			assert.Empty(t, first.Message)
			assert.Equal(t, first.Error.Error(), second.Error.Error())
			assert.Equal(t, fsm.OrderStateCheckout, s.State())
		})
	}
}

func TestStore_CancelOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SelectFlavor(ctx, "Chocolate", "large").Error)
	require.NoError(t, s.CheckInventory(ctx, "Chocolate", "large").Error)

	result := s.CancelOrder(ctx)
	require.NoError(t, result.Error)
	assert.Equal(t, "Order cancelled.", result.Message)
	assert.Equal(t, fsm.OrderStateCheckout, s.State())
	assert.Equal(t, Selection{}, s.Selection())
	assert.Equal(t, 1.0, s.Inventory()["Chocolate"])

	require.NoError(t, s.SelectFlavor(ctx, "Vanilla", "small").Error)
	require.NoError(t, s.CheckInventory(ctx, "Vanilla", "small").Error)
	require.NoError(t, s.PrepareOrder(ctx).Error)

	result = s.CancelOrder(ctx)
	require.ErrorIs(t, result.Error, fsm.ErrInvalidTransition)
	assert.Contains(t, result.Error.Error(), "preparing_order")
	assert.Equal(t, fsm.OrderStatePreparingOrder, s.State())
}

func TestStore_LogsTransitions(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	s := New(WithLogger(log.New(&buf, "", 0)))

	require.NoError(t, s.SelectFlavor(ctx, "Vanilla", "small").Error)
	_ = s.PickupOrder(ctx)

	assert.Equal(t, "order select_flavor: checkout -> select_flavor\n", buf.String())
}

func TestStore_WithStockIsCopied(t *testing.T) {
	stock := map[string]float64{"Vanilla": 1, "Mint": -2}
	s := New(WithStock(stock))
	stock["Vanilla"] = 100

	assert.Equal(t, map[string]float64{"Vanilla": 1, "Mint": 0}, s.Inventory())
}
