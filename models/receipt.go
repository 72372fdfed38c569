package models

import "time"

// Receipt is a read-only projection of an Order for the customer's receipt
// page. It is computed on request and never stored.
type Receipt struct {
	OrderID         int           `json:"orderId"`
	ReceiptNumber   string        `json:"receiptNumber"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	ServiceType     ServiceType   `json:"serviceType"`
	ServiceLabel    string        `json:"serviceLabel"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentLabel    string        `json:"paymentLabel"`
	Status          OrderStatus   `json:"status"`
	StatusLabel     string        `json:"statusLabel"`
	Notes           *string       `json:"notes"`
	Lines           []ReceiptLine `json:"lines"`
	TotalItems      int           `json:"totalItems"`
	Total           int64         `json:"total"`
	TotalText       string        `json:"totalText"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type ReceiptLine struct {
	MenuItemID    int    `json:"menuItemId"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unitPrice"`
	UnitPriceText string `json:"unitPriceText"`
	Subtotal      int64  `json:"subtotal"`
	SubtotalText  string `json:"subtotalText"`
}
