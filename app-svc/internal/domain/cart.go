package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SelectionError reports why a set of selected options cannot go into a cart.
type SelectionError struct {
	Missing  []string // required groups without a choice
	TooMany  []string // single-select groups with more than one choice
	Unknown  []string // "group" or "group/choice" not present on the dish
	DishName string
}

func (e *SelectionError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "please select options for: "+strings.Join(e.Missing, ", "))
	}
	if len(e.TooMany) > 0 {
		parts = append(parts, "only one choice allowed for: "+strings.Join(e.TooMany, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown options: "+strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("invalid selection for %s: %s", e.DishName, strings.Join(parts, "; "))
}

func (d Dish) Option(name string) (DishOption, bool) {
	for _, option := range d.Options {
		if option.Name == name {
			return option, true
		}
	}
	return DishOption{}, false
}

func (o DishOption) Choice(id string) (Choice, bool) {
	for _, choice := range o.Choices {
		if choice.ID == id {
			return choice, true
		}
	}
	return Choice{}, false
}

// ValidateSelection checks selected against the dish's option groups. It
// returns nil or a *SelectionError.
func (d Dish) ValidateSelection(selected SelectedOptions) error {
	selErr := &SelectionError{DishName: d.Name}

	for _, option := range d.Options {
		chosen := selected[option.Name]
		if option.Required && len(chosen) == 0 {
			selErr.Missing = append(selErr.Missing, option.Name)
		}
		if !option.Multiple && len(chosen) > 1 {
			selErr.TooMany = append(selErr.TooMany, option.Name)
		}
	}

	for name, ids := range selected {
		option, ok := d.Option(name)
		if !ok {
			if len(ids) > 0 {
				selErr.Unknown = append(selErr.Unknown, name)
			}
			continue
		}
		for _, id := range ids {
			if _, ok := option.Choice(id); !ok {
				selErr.Unknown = append(selErr.Unknown, name+"/"+id)
			}
		}
	}

	sort.Strings(selErr.Unknown)

	if len(selErr.Missing) == 0 && len(selErr.TooMany) == 0 && len(selErr.Unknown) == 0 {
		return nil
	}
	return selErr
}

// UnitPrice is the dish price plus every selected choice that still exists on
// the dish. Stale groups or choices count as zero.
func (i CartItem) UnitPrice() decimal.Decimal {
	price := decimal.NewFromFloat(i.Dish.Price)
	for name, ids := range i.SelectedOptions {
		option, ok := i.Dish.Option(name)
		if !ok {
			continue
		}
		for _, id := range ids {
			if choice, ok := option.Choice(id); ok {
				price = price.Add(decimal.NewFromFloat(choice.Price))
			}
		}
	}
	return price
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone returns a copy that shares no slices or maps with i.
func (i CartItem) Clone() CartItem {
	clone := i
	clone.Dish = i.Dish.Clone()
	clone.SelectedOptions = i.SelectedOptions.Clone()
	return clone
}

func (d Dish) Clone() Dish {
	clone := d
	if d.Options != nil {
		clone.Options = make([]DishOption, len(d.Options))
		for idx, option := range d.Options {
			option.Choices = append([]Choice(nil), option.Choices...)
			clone.Options[idx] = option
		}
	}
	return clone
}

func (s SelectedOptions) Clone() SelectedOptions {
	if s == nil {
		return nil
	}
	clone := make(SelectedOptions, len(s))
	for name, ids := range s {
		clone[name] = append([]string(nil), ids...)
	}
	return clone
}

func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	clone := make([]CartItem, len(items))
	for idx, item := range items {
		clone[idx] = item.Clone()
	}
	return clone
}
