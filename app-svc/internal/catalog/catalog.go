package catalog

import (
	"strings"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
)

// SeedUserID owns the seeded reviews that show up under "my reviews".
const SeedUserID = "1"

// Catalog is read-only reference data compiled into the binary.
type Catalog struct {
	kitchens []domain.Kitchen
	dishes   []domain.Dish
}

func New(kitchens []domain.Kitchen, dishes []domain.Dish) *Catalog {
	return &Catalog{kitchens: kitchens, dishes: dishes}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(kitchens(), dishes())
}

func (c *Catalog) Kitchens() []domain.Kitchen {
	return append([]domain.Kitchen(nil), c.kitchens...)
}

func (c *Catalog) Kitchen(id string) (domain.Kitchen, bool) {
	for _, kitchen := range c.kitchens {
		if kitchen.ID == id {
			return kitchen, true
		}
	}
	return domain.Kitchen{}, false
}

func (c *Catalog) Dishes(kitchenID string) []domain.Dish {
	var dishes []domain.Dish
	for _, dish := range c.dishes {
		if dish.KitchenID == kitchenID {
			dishes = append(dishes, dish.Clone())
		}
	}
	return dishes
}

func (c *Catalog) Dish(id string) (domain.Dish, bool) {
	for _, dish := range c.dishes {
		if dish.ID == id {
			return dish.Clone(), true
		}
	}
	return domain.Dish{}, false
}

// Search matches kitchens by name or category and dishes by name or category.
func (c *Catalog) Search(query string) ([]domain.Kitchen, []domain.Dish) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	var kitchens []domain.Kitchen
	for _, kitchen := range c.kitchens {
		if matches(query, kitchen.Name) || matchesAny(query, kitchen.Categories) {
			kitchens = append(kitchens, kitchen)
		}
	}

	var dishes []domain.Dish
	for _, dish := range c.dishes {
		if matches(query, dish.Name) || matches(query, dish.Category) {
			dishes = append(dishes, dish.Clone())
		}
	}
	return kitchens, dishes
}

func matches(query, value string) bool {
	return strings.Contains(strings.ToLower(value), query)
}

func matchesAny(query string, values []string) bool {
	for _, value := range values {
		if matches(query, value) {
			return true
		}
	}
	return false
}

// SeedOrders is the order history shown before the first real order.
func (c *Catalog) SeedOrders() []domain.Order {
	return seedOrders(c)
}

func (c *Catalog) SeedReviews() []domain.Review {
	return seedReviews()
}

// DemoUser is the profile signed in when a session is opened without one.
func DemoUser() domain.User {
	return domain.User{
		ID:    SeedUserID,
		Name:  "John Doe",
		Email: "john.doe@example.com",
		Phone: "+1 (555) 123-4567",
		Addresses: []domain.Address{
			{ID: "1", Type: domain.AddressHome, Address: "123 Main St, Apt 4B, New York, NY 10001", Default: true},
			{ID: "2", Type: domain.AddressWork, Address: "456 Park Ave, New York, NY 10022"},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: "1", Type: domain.PaymentCard, Last4: "4242", Brand: "Visa", Default: true},
		},
	}
}
