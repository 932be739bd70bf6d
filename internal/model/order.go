package model

import "math"

// OrderItem is a client-supplied snapshot of a product at order time. Price and
// title are taken from the payload as-is, not re-derived from the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Title     string  `json:"title" bson:"title" validate:"required"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"min=1"`
}

// OrderCreate defines the structure for order creation requests
type OrderCreate struct {
	Name    string      `json:"name" validate:"required"`
	Email   string      `json:"email" validate:"required"`
	Address string      `json:"address" validate:"required"`
	Items   []OrderItem `json:"items" validate:"required,dive"`
	Notes   *string     `json:"notes"`
}

// Total computes the order total as the sum of price times quantity over all
// items, rounded to 2 decimal places.
func (o *OrderCreate) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// Order is the persisted order document: the validated payload plus the
// server-computed total.
type Order struct {
	Name    string      `bson:"name"`
	Email   string      `bson:"email"`
	Address string      `bson:"address"`
	Items   []OrderItem `bson:"items"`
	Notes   *string     `bson:"notes"`
	Total   float64     `bson:"total"`
}

// Order builds the persisted document from the request payload.
func (o *OrderCreate) Order() Order {
	return Order{
		Name:    o.Name,
		Email:   o.Email,
		Address: o.Address,
		Items:   o.Items,
		Notes:   o.Notes,
		Total:   o.Total(),
	}
}
