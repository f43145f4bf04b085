package domain

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// deliveryFlow is the happy path, in order.
var deliveryFlow = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	return s == StatusCancelled || s.Step() > 0
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Step is the 1-based position on the delivery flow, 0 when s is not on it.
func (s OrderStatus) Step() int {
	for idx, status := range deliveryFlow {
		if status == s {
			return idx + 1
		}
	}
	return 0
}

// Next returns the following status on the delivery flow. Terminal and
// unknown statuses have no successor.
func (s OrderStatus) Next() (OrderStatus, bool) {
	step := s.Step()
	if step == 0 || step == len(deliveryFlow) {
		return "", false
	}
	return deliveryFlow[step], true
}

// BeforePreparing reports whether the kitchen has not started on the order.
func (s OrderStatus) BeforePreparing() bool {
	return s == StatusPending || s == StatusConfirmed
}
