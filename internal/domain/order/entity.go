// backend/internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidOrder = errors.New("order: invalid")
	ErrEmptyCart    = errors.New("order: winkelwagen is leeg")
)

// DeliveryMethod for a shop order.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

func (d DeliveryMethod) Valid() bool {
	return d == DeliveryPickup || d == DeliveryDelivery
}

// CustomerInfo is the contact block collected at checkout. Address fields are
// only required when the order is delivered.
type CustomerInfo struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// MissingFields returns the unset required field names for the chosen
// delivery method.
func (c CustomerInfo) MissingFields(method DeliveryMethod) []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("fullName", c.FullName)
	check("phone", c.Phone)
	check("email", c.Email)
	if method == DeliveryDelivery {
		check("address", c.Address)
		check("postalCode", c.PostalCode)
		check("city", c.City)
	}
	return missing
}

// Line is one confirmed order line, priced at checkout time.
type Line struct {
	StockItemID    string `json:"stockItemId"`
	Name           string `json:"name"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
}

// Confirmation is the checkout result shown to the customer.
//
// No payment is processed: this is an explicit placeholder for a real
// payment/order system, never a source of truth for inventory.
type Confirmation struct {
	OrderNumber    string         `json:"orderNumber"`
	OwnerID        string         `json:"ownerId"`
	Lines          []Line         `json:"lines"`
	TotalCents     int64          `json:"totalCents"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	Customer       CustomerInfo   `json:"customer"`
	CreatedAt      time.Time      `json:"createdAt"`
}
