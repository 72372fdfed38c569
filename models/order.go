package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order, cancelled last.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

type ServiceType string

const (
	ServiceDelivery ServiceType = "diantar"
	ServicePickup   ServiceType = "diambil"
	ServiceDineIn   ServiceType = "makan ditempat"
)

var ServiceTypes = []ServiceType{ServiceDelivery, ServicePickup, ServiceDineIn}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentGoPay        PaymentMethod = "gopay"
	PaymentOVO          PaymentMethod = "ovo"
	PaymentDANA         PaymentMethod = "dana"
)

var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentBankTransfer,
	PaymentGoPay,
	PaymentOVO,
	PaymentDANA,
}

// Order is a placed order. Items and TotalAmount are frozen at creation;
// only Status changes afterwards.
type Order struct {
	ID              int           `json:"id"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	ServiceType     ServiceType   `json:"serviceType"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Notes           *string       `json:"notes"`
	Items           []OrderLine   `json:"items"`
	TotalAmount     int64         `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// NewOrder is the checkout payload. Status, id and createdAt are never
// client supplied.
type NewOrder struct {
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	ServiceType     ServiceType   `json:"serviceType"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Notes           *string       `json:"notes"`
	Items           []OrderLine   `json:"items"`
	TotalAmount     int64         `json:"totalAmount"`
}

// Clone returns a deep copy so callers can't mutate a stored order's items.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]OrderLine, len(o.Items))
		copy(out.Items, o.Items)
	}
	if o.Notes != nil {
		n := *o.Notes
		out.Notes = &n
	}
	return out
}
