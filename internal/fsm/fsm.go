package fsm

const (
	OrderStateCheckout       = "checkout"
	OrderStateSelectFlavor   = "select_flavor"
	OrderStatePlacedOrder    = "placed_order"
	OrderStatePreparingOrder = "preparing_order"
	OrderStateMakingOrder    = "making_order"
	OrderStateReadyForPickup = "ready_for_pickup"
	OrderStateCompleted      = "completed_order"
)

const (
	OrderEventSelectFlavor   = "select_flavor"
	OrderEventCheckInventory = "check_inventory"
	OrderEventPrepareOrder   = "prepare_order"
	OrderEventMakeIceCream   = "make_ice_cream"
	OrderEventFinishIceCream = "finish_ice_cream"
	OrderEventPickupOrder    = "pickup_order"
	OrderEventCancelOrder    = "cancel_order"
)

// OrderStates lists every order state in lifecycle order.
var OrderStates = []string{
	OrderStateCheckout,
	OrderStateSelectFlavor,
	OrderStatePlacedOrder,
	OrderStatePreparingOrder,
	OrderStateMakingOrder,
	OrderStateReadyForPickup,
	OrderStateCompleted,
}

// OrderEvents lists every order event.
var OrderEvents = []string{
	OrderEventSelectFlavor,
	OrderEventCheckInventory,
	OrderEventPrepareOrder,
	OrderEventMakeIceCream,
	OrderEventFinishIceCream,
	OrderEventPickupOrder,
	OrderEventCancelOrder,
}
