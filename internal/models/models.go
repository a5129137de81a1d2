package models

import (
	"time"
)

type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"` // Minor units (cents) for Stripe
	PriceDisplay string `json:"priceDisplay"`
	Image        string `json:"image"`
	Description  string `json:"description"`
}

// CartLine is one entry in a shopper's cart. Quantity is always >= 1;
// setting it to zero or below removes the line instead.
type CartLine struct {
	ProductID string  `json:"id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"` // Major units for display
	Image     string  `json:"image"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type CheckoutItem struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// CheckoutRequest is built once per checkout attempt and never persisted.
type CheckoutRequest struct {
	Items        []CheckoutItem `json:"items"`
	CustomerInfo CustomerInfo   `json:"customerInfo"`
}

type OrderItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"` // Minor units
}

// Order is a confirmed payment tracked through its delivery countdown.
// The ID is the provider-assigned session or payment intent id.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	TotalAmount   int64       `json:"total_amount"` // Minor units
	OrderDate     time.Time   `json:"order_date"`
	DeliveryDate  time.Time   `json:"delivery_date"`
	EmailsSent    int         `json:"emails_sent"` // Countdown emails delivered so far (0..7)
}
