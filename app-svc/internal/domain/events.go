package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventReviewCreated      = "review_created"
	EventReviewUpdated      = "review_updated"
	EventReviewDeleted      = "review_deleted"
	EventReviewLiked        = "review_liked"
)

type EventItem struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// Event is the message app-svc emits to Kafka for downstream aggregation.
type Event struct {
	Type           string      `json:"type"`
	OrderID        string      `json:"order_id,omitempty"`
	KitchenID      string      `json:"kitchen_id,omitempty"`
	Status         OrderStatus `json:"status,omitempty"`
	Items          []EventItem `json:"items,omitempty"`
	ReviewID       string      `json:"review_id,omitempty"`
	TargetID       string      `json:"target_id,omitempty"`
	TargetType     TargetType  `json:"target_type,omitempty"`
	Rating         int         `json:"rating,omitempty"`
	PreviousRating int         `json:"previous_rating,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
}

// Key is the partition key: the order for order events, the review target
// otherwise.
func (e Event) Key() string {
	if e.OrderID != "" && e.TargetID == "" {
		return e.OrderID
	}
	return string(e.TargetType) + ":" + e.TargetID
}

func OrderPlacedEvent(order Order, at time.Time) Event {
	items := make([]EventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, EventItem{DishID: item.Dish.ID, Quantity: item.Quantity})
	}
	return Event{
		Type:      EventOrderPlaced,
		OrderID:   order.ID,
		KitchenID: order.Kitchen.ID,
		Status:    order.Status,
		Items:     items,
		Timestamp: at,
	}
}
