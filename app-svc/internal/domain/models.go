package domain

import "time"

type Kitchen struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	DeliveryTime string   `json:"deliveryTime"`
	DeliveryFee  float64  `json:"deliveryFee"`
	Categories   []string `json:"categories"`
	Featured     bool     `json:"featured"`
	Description  string   `json:"description"`
}

// KitchenSummary is the copy of a kitchen an order keeps, so catalog changes
// never alter order history.
type KitchenSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (k Kitchen) Summary() KitchenSummary {
	return KitchenSummary{ID: k.ID, Name: k.Name, Image: k.Image}
}

type Choice struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type DishOption struct {
	Name     string   `json:"name"`
	Choices  []Choice `json:"choices"`
	Required bool     `json:"required"`
	Multiple bool     `json:"multiple"`
}

type Dish struct {
	ID          string       `json:"id"`
	KitchenID   string       `json:"kitchenId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Category    string       `json:"category"`
	Popular     bool         `json:"popular"`
	Vegetarian  bool         `json:"vegetarian"`
	Spicy       bool         `json:"spicy"`
	Options     []DishOption `json:"options,omitempty"`
}

// SelectedOptions maps an option group name to the chosen choice ids.
type SelectedOptions map[string][]string

type CartItem struct {
	Dish                Dish            `json:"dish"`
	Quantity            int             `json:"quantity"`
	SelectedOptions     SelectedOptions `json:"selectedOptions,omitempty"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

type CartRecord struct {
	Items     []CartItem `json:"items"`
	KitchenID *string    `json:"kitchenId"`
}

type Order struct {
	ID              string         `json:"id"`
	Items           []CartItem     `json:"items"`
	Status          OrderStatus    `json:"status"`
	Total           float64        `json:"total"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryTime    string         `json:"deliveryTime"`
	CreatedAt       time.Time      `json:"createdAt"`
	Kitchen         KitchenSummary `json:"kitchen"`
}

type OrderRecord struct {
	Orders      []Order `json:"orders"`
	ActiveOrder *Order  `json:"activeOrder"`
}

type TargetType string

const (
	TargetKitchen TargetType = "kitchen"
	TargetDish    TargetType = "dish"
)

func (t TargetType) Valid() bool {
	return t == TargetKitchen || t == TargetDish
}

type Review struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	TargetID   string     `json:"targetId"`
	TargetType TargetType `json:"targetType"`
	Rating     int        `json:"rating"`
	Text       string     `json:"text"`
	Date       time.Time  `json:"date"`
	Photos     []string   `json:"photos"`
	Likes      int        `json:"likes"`
	OrderID    string     `json:"orderId,omitempty"`
}

type ReviewRecord struct {
	Reviews     []Review `json:"reviews"`
	UserReviews []Review `json:"userReviews"`
}

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

type Address struct {
	ID      string      `json:"id"`
	Type    AddressType `json:"type"`
	Address string      `json:"address"`
	Default bool        `json:"default"`
}

type PaymentType string

const (
	PaymentCard   PaymentType = "card"
	PaymentUPI    PaymentType = "upi"
	PaymentWallet PaymentType = "wallet"
)

type PaymentMethod struct {
	ID      string      `json:"id"`
	Type    PaymentType `json:"type"`
	Last4   string      `json:"last4,omitempty"`
	Brand   string      `json:"brand,omitempty"`
	Default bool        `json:"default"`
}

type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Addresses      []Address       `json:"addresses"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// DefaultAddress returns the default address, falling back to the first one.
func (u User) DefaultAddress() (Address, bool) {
	for _, address := range u.Addresses {
		if address.Default {
			return address, true
		}
	}
	if len(u.Addresses) > 0 {
		return u.Addresses[0], true
	}
	return Address{}, false
}

func (u User) FindAddress(id string) (Address, bool) {
	for _, address := range u.Addresses {
		if address.ID == id {
			return address, true
		}
	}
	return Address{}, false
}

// DefaultPaymentMethod returns the default payment method, falling back to the
// first one.
func (u User) DefaultPaymentMethod() (PaymentMethod, bool) {
	for _, method := range u.PaymentMethods {
		if method.Default {
			return method, true
		}
	}
	if len(u.PaymentMethods) > 0 {
		return u.PaymentMethods[0], true
	}
	return PaymentMethod{}, false
}

func (u User) FindPaymentMethod(id string) (PaymentMethod, bool) {
	for _, method := range u.PaymentMethods {
		if method.ID == id {
			return method, true
		}
	}
	return PaymentMethod{}, false
}

type UserRecord struct {
	User       *User `json:"user"`
	IsLoggedIn bool  `json:"isLoggedIn"`
}
