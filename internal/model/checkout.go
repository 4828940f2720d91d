package model

import "github.com/google/uuid"

// CheckoutItem is a client-supplied line item. The price arrives as a string
// and is only trusted after the pricing normalizer has parsed it.
type CheckoutItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image,omitempty"`
}

// CheckoutRequest is the payload for POST /checkout. The customer and store
// identifiers come from the request body rather than a verified token; see
// the design notes before changing that.
type CheckoutRequest struct {
	Products   []CheckoutItem `json:"products"`
	CustomerID int64          `json:"customerId"`
	StoreID    int64          `json:"storeId"`
}

// CheckoutResponse is returned once the order is durable and a payment
// session exists for it.
type CheckoutResponse struct {
	SessionID   string    `json:"sessionId"`
	OrderID     uuid.UUID `json:"orderId"`
	RedirectURL string    `json:"url,omitempty"`
}
