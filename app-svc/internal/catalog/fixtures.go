package catalog

import (
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
)

func spiceLevel() domain.DishOption {
	return domain.DishOption{
		Name: "Spice Level",
		Choices: []domain.Choice{
			{ID: "mild", Name: "Mild"},
			{ID: "medium", Name: "Medium"},
			{ID: "hot", Name: "Hot"},
		},
		Required: true,
	}
}

func kitchens() []domain.Kitchen {
	return []domain.Kitchen{
		{
			ID: "1", Name: "Mom's Homestyle Kitchen", Image: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5",
			Rating: 4.8, ReviewCount: 342, DeliveryTime: "25-35 min", DeliveryFee: 49,
			Categories: []string{"Indian", "Homestyle", "Comfort Food"}, Featured: true,
			Description: "Authentic homemade dishes just like mom used to make.",
		},
		{
			ID: "2", Name: "Urban Bowls", Image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			Rating: 4.5, ReviewCount: 218, DeliveryTime: "15-25 min", DeliveryFee: 59,
			Categories: []string{"Healthy", "Bowls", "Salads"}, Featured: true,
			Description: "Nutritious bowls packed with fresh ingredients.",
		},
		{
			ID: "3", Name: "Spice Route", Image: "https://images.unsplash.com/photo-1565557623262-b51c2513a641",
			Rating: 4.7, ReviewCount: 189, DeliveryTime: "30-40 min", DeliveryFee: 39,
			Categories:  []string{"Indian", "Curry", "Spicy"},
			Description: "Indian cuisine with a modern twist.",
		},
		{
			ID: "4", Name: "Pasta Paradise", Image: "https://images.unsplash.com/photo-1563379926898-05f4575a45d8",
			Rating: 4.6, ReviewCount: 156, DeliveryTime: "20-30 min", DeliveryFee: 69,
			Categories: []string{"Italian", "Pasta", "Pizza"}, Featured: true,
			Description: "Handcrafted pasta made fresh daily.",
		},
		{
			ID: "5", Name: "Sushi Cloud", Image: "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
			Rating: 4.9, ReviewCount: 203, DeliveryTime: "35-45 min", DeliveryFee: 79,
			Categories:  []string{"Japanese", "Sushi", "Asian"},
			Description: "Fresh sushi rolled to order.",
		},
		{
			ID: "6", Name: "Taco Factory", Image: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47",
			Rating: 4.4, ReviewCount: 178, DeliveryTime: "20-30 min", DeliveryFee: 49,
			Categories:  []string{"Mexican", "Tacos", "Burritos"},
			Description: "Street-style tacos with handmade tortillas.",
		},
		{
			ID: "7", Name: "Burger Cloud", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
			Rating: 4.3, ReviewCount: 245, DeliveryTime: "20-30 min", DeliveryFee: 59,
			Categories: []string{"American", "Burgers", "Fast Food"}, Featured: true,
			Description: "Smash burgers and loaded sides.",
		},
		{
			ID: "8", Name: "Green Leaf", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			Rating: 4.5, ReviewCount: 132, DeliveryTime: "15-25 min", DeliveryFee: 69,
			Categories:  []string{"Vegan", "Healthy", "Salads"},
			Description: "Plant-based plates and cold-pressed juices.",
		},
	}
}

func dishes() []domain.Dish {
	return []domain.Dish{
		{
			ID: "101", KitchenID: "1", Name: "Mom's Special Butter Chicken", Price: 349,
			Category: "Main Course", Popular: true, Spicy: true,
			Description: "Tender chicken in a rich, creamy tomato sauce.",
			Options: []domain.DishOption{
				spiceLevel(),
				{
					Name: "Add-ons",
					Choices: []domain.Choice{
						{ID: "naan", Name: "Butter Naan", Price: 49},
						{ID: "rice", Name: "Basmati Rice", Price: 79},
						{ID: "raita", Name: "Cucumber Raita", Price: 39},
					},
					Multiple: true,
				},
			},
		},
		{
			ID: "102", KitchenID: "1", Name: "Homestyle Dal Makhani", Price: 249,
			Category: "Main Course", Popular: true, Vegetarian: true,
			Description: "Black lentils slow-cooked with butter and cream.",
			Options: []domain.DishOption{
				{
					Name: "Add-ons",
					Choices: []domain.Choice{
						{ID: "naan", Name: "Butter Naan", Price: 49},
						{ID: "rice", Name: "Basmati Rice", Price: 79},
						{ID: "papad", Name: "Papad", Price: 29},
					},
					Multiple: true,
				},
			},
		},
		{
			ID: "103", KitchenID: "1", Name: "Paneer Tikka Masala", Price: 299,
			Category: "Main Course", Vegetarian: true, Spicy: true,
			Description: "Grilled cottage cheese in a spiced tomato gravy.",
			Options:     []domain.DishOption{spiceLevel()},
		},
		{
			ID: "104", KitchenID: "1", Name: "Chicken Biryani", Price: 399,
			Category: "Rice", Popular: true, Spicy: true,
			Description: "Fragrant basmati rice layered with spiced chicken.",
		},
		{
			ID: "201", KitchenID: "2", Name: "Protein Power Bowl", Price: 329,
			Category: "Bowls", Popular: true,
			Description: "Quinoa, greens and your choice of protein.",
			Options: []domain.DishOption{
				{
					Name: "Protein",
					Choices: []domain.Choice{
						{ID: "chicken", Name: "Grilled Chicken"},
						{ID: "tofu", Name: "Tofu"},
						{ID: "shrimp", Name: "Shrimp", Price: 59},
					},
					Required: true,
				},
				{
					Name: "Dressing",
					Choices: []domain.Choice{
						{ID: "lime", Name: "Lime-Cilantro"},
						{ID: "ranch", Name: "Avocado Ranch"},
						{ID: "tahini", Name: "Lemon Tahini"},
					},
					Required: true,
				},
			},
		},
		{
			ID: "202", KitchenID: "2", Name: "Mediterranean Bowl", Price: 299,
			Category: "Bowls", Vegetarian: true,
			Description: "Falafel, hummus and roasted vegetables.",
		},
		{
			ID: "401", KitchenID: "4", Name: "Classic Spaghetti Carbonara", Price: 349,
			Category: "Pasta", Popular: true,
			Description: "Spaghetti with egg, pecorino and crispy pancetta.",
			Options: []domain.DishOption{
				{
					Name: "Add-ons",
					Choices: []domain.Choice{
						{ID: "chicken", Name: "Grilled Chicken", Price: 79},
						{ID: "shrimp", Name: "Garlic Shrimp", Price: 99},
						{ID: "bread", Name: "Garlic Bread", Price: 59},
					},
					Multiple: true,
				},
			},
		},
		{
			ID: "701", KitchenID: "7", Name: "Classic Cheeseburger", Price: 279,
			Category: "Burgers", Popular: true,
			Description: "Beef patty, cheddar, pickles and house sauce.",
			Options: []domain.DishOption{
				{
					Name: "Patty",
					Choices: []domain.Choice{
						{ID: "single", Name: "Single"},
						{ID: "double", Name: "Double", Price: 79},
					},
					Required: true,
				},
				{
					Name: "Sides",
					Choices: []domain.Choice{
						{ID: "fries", Name: "French Fries", Price: 59},
						{ID: "onion", Name: "Onion Rings", Price: 69},
						{ID: "salad", Name: "Side Salad", Price: 59},
					},
					Multiple: true,
				},
			},
		},
	}
}

func mustTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func seedOrders(c *Catalog) []domain.Order {
	item := func(dishID string, quantity int, selected domain.SelectedOptions) domain.CartItem {
		dish, _ := c.Dish(dishID)
		return domain.CartItem{Dish: dish, Quantity: quantity, SelectedOptions: selected}
	}
	summary := func(kitchenID string) domain.KitchenSummary {
		kitchen, _ := c.Kitchen(kitchenID)
		return kitchen.Summary()
	}

	return []domain.Order{
		{
			ID: "ORD-001",
			Items: []domain.CartItem{
				item("101", 1, domain.SelectedOptions{"Spice Level": {"medium"}, "Add-ons": {"naan", "rice"}}),
				item("102", 1, nil),
			},
			Status:          domain.StatusDelivered,
			Total:           870.36,
			DeliveryAddress: "123 Main St, Apt 4B, New York, NY 10001",
			DeliveryTime:    "25-35 min",
			CreatedAt:       mustTime("2023-06-15T18:30:00Z"),
			Kitchen:         summary("1"),
		},
		{
			ID: "ORD-002",
			Items: []domain.CartItem{
				item("201", 2, domain.SelectedOptions{"Protein": {"chicken"}, "Dressing": {"lime"}}),
			},
			Status:          domain.StatusOutForDelivery,
			Total:           803.26,
			DeliveryAddress: "456 Park Ave, New York, NY 10022",
			DeliveryTime:    "15-25 min",
			CreatedAt:       mustTime("2023-06-20T12:45:00Z"),
			Kitchen:         summary("2"),
		},
		{
			ID: "ORD-003",
			Items: []domain.CartItem{
				item("701", 1, domain.SelectedOptions{"Patty": {"double"}, "Sides": {"fries", "onion"}}),
			},
			Status:          domain.StatusPreparing,
			Total:           600.58,
			DeliveryAddress: "789 Broadway, New York, NY 10003",
			DeliveryTime:    "20-30 min",
			CreatedAt:       mustTime("2023-06-22T19:15:00Z"),
			Kitchen:         summary("7"),
		},
	}
}

func seedReviews() []domain.Review {
	return []domain.Review{
		{
			ID: "1", UserID: "1", UserName: "John Doe", TargetID: "1", TargetType: domain.TargetKitchen, Rating: 5,
			Text:   "Absolutely love this place! The food tastes just like my grandmother used to make.",
			Date:   mustTime("2023-05-15T14:30:00Z"),
			Photos: []string{}, Likes: 12, OrderID: "ORD-001",
		},
		{
			ID: "2", UserID: "2", UserName: "Sarah Johnson", TargetID: "1", TargetType: domain.TargetKitchen, Rating: 4,
			Text:   "Great food and quick delivery. The butter chicken is amazing!",
			Date:   mustTime("2023-05-20T18:45:00Z"),
			Photos: []string{}, Likes: 8, OrderID: "ORD-002",
		},
		{
			ID: "3", UserID: "3", UserName: "Michael Chen", TargetID: "1", TargetType: domain.TargetKitchen, Rating: 5,
			Text:   "Consistently excellent. Generous portions and everything arrives hot.",
			Date:   mustTime("2023-06-05T20:15:00Z"),
			Photos: []string{"https://images.unsplash.com/photo-1585937421612-70a008356c36"}, Likes: 15, OrderID: "ORD-003",
		},
		{
			ID: "4", UserID: "4", UserName: "Emily Wilson", TargetID: "101", TargetType: domain.TargetDish, Rating: 5,
			Text:   "The best butter chicken I have had outside of Delhi. Creamy and perfectly spiced.",
			Date:   mustTime("2023-06-10T12:30:00Z"),
			Photos: []string{}, Likes: 7, OrderID: "ORD-004",
		},
		{
			ID: "5", UserID: "5", UserName: "David Thompson", TargetID: "101", TargetType: domain.TargetDish, Rating: 4,
			Text:   "Really good, though I would ask for extra spicy next time.",
			Date:   mustTime("2023-06-12T19:20:00Z"),
			Photos: []string{}, Likes: 3, OrderID: "ORD-005",
		},
		{
			ID: "6", UserID: "6", UserName: "Lisa Garcia", TargetID: "102", TargetType: domain.TargetDish, Rating: 5,
			Text:   "Rich, smoky and comforting. Pairs perfectly with the butter naan.",
			Date:   mustTime("2023-06-15T21:10:00Z"),
			Photos: []string{"https://images.unsplash.com/photo-1546833998-877b37c2e4c6"}, Likes: 9, OrderID: "ORD-006",
		},
		{
			ID: "7", UserID: "7", UserName: "Robert Kim", TargetID: "2", TargetType: domain.TargetKitchen, Rating: 5,
			Text:   "Fresh ingredients and huge bowls. My go-to lunch spot.",
			Date:   mustTime("2023-06-18T13:45:00Z"),
			Photos: []string{}, Likes: 11, OrderID: "ORD-007",
		},
		{
			ID: "8", UserID: "1", UserName: "John Doe", TargetID: "4", TargetType: domain.TargetKitchen, Rating: 4,
			Text:   "Pasta was cooked perfectly al dente. Garlic bread could be crispier.",
			Date:   mustTime("2023-06-20T20:30:00Z"),
			Photos: []string{}, Likes: 6, OrderID: "ORD-008",
		},
		{
			ID: "9", UserID: "9", UserName: "Thomas Wright", TargetID: "201", TargetType: domain.TargetDish, Rating: 5,
			Text:   "Filling, healthy and the lime-cilantro dressing is addictive.",
			Date:   mustTime("2023-06-22T15:20:00Z"),
			Photos: []string{"https://images.unsplash.com/photo-1512621776951-a57141f2eefd"}, Likes: 14, OrderID: "ORD-009",
		},
		{
			ID: "10", UserID: "10", UserName: "Amanda Martinez", TargetID: "401", TargetType: domain.TargetDish, Rating: 5,
			Text:   "Silky sauce, crispy pancetta. Tastes like a trattoria in Rome.",
			Date:   mustTime("2023-06-25T19:15:00Z"),
			Photos: []string{}, Likes: 10, OrderID: "ORD-010",
		},
	}
}
