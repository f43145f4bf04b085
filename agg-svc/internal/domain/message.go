package domain

import (
	"fmt"
	"time"
)

const (
	EventOrderPlaced   = "order_placed"
	EventReviewCreated = "review_created"
	EventReviewUpdated = "review_updated"
	EventReviewDeleted = "review_deleted"
)

type EventItem struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// Event carries the fields of an app-svc event that aggregation needs.
type Event struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id,omitempty"`
	KitchenID  string      `json:"kitchen_id,omitempty"`
	Items      []EventItem `json:"items,omitempty"`
	ReviewID   string      `json:"review_id,omitempty"`
	TargetID   string      `json:"target_id,omitempty"`
	TargetType string      `json:"target_type,omitempty"`
	Rating     int         `json:"rating,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

func RatingKey(targetType, targetID string) string {
	return fmt.Sprintf("rating:%s:%s", targetType, targetID)
}

// RatingMembersKey maps review ids to the rating each one contributes to the
// target's totals.
func RatingMembersKey(targetType, targetID string) string {
	return RatingKey(targetType, targetID) + ":reviews"
}

func DailyKey(day time.Time, kitchenID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", day.Format("2006-01-02"), kitchenID)
}

func AllTimeKey(kitchenID string) string {
	return "analytics:alltime:" + kitchenID
}
