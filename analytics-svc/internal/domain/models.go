package domain

import (
	"fmt"
	"time"
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"
)

type Rating struct {
	TargetID   string  `json:"targetId"`
	TargetType string  `json:"targetType"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}

type DishScore struct {
	DishID string  `json:"dishId"`
	Score  float64 `json:"score"`
}

type TopDishes struct {
	KitchenID string      `json:"kitchenId"`
	Period    string      `json:"period"`
	Dishes    []DishScore `json:"dishes"`
}

// Key layout shared with agg-svc, which writes these hashes and sorted sets.

func RatingKey(targetType, targetID string) string {
	return fmt.Sprintf("rating:%s:%s", targetType, targetID)
}

func DailyKey(day time.Time, kitchenID string) string {
	return fmt.Sprintf("analytics:daily:%s:%s", day.Format("2006-01-02"), kitchenID)
}

func AllTimeKey(kitchenID string) string {
	return "analytics:alltime:" + kitchenID
}
