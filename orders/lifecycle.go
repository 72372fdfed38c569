// Package orders holds the order lifecycle rules: what a valid checkout
// looks like, which statuses exist, and how an order is presented back to
// the customer.
package orders

import (
	"fmt"
	"math"
	"strings"

	"github.com/yeremiapane/seblak-listyaning/apperr"
	"github.com/yeremiapane/seblak-listyaning/models"
)

const (
	MinPhoneLength   = 10
	MinAddressLength = 10

	PickupAddress = "Diambil di tempat"
	DineInAddress = "Makan di tempat"
)

// InitialStatus is assigned by the provider at creation.
const InitialStatus = models.StatusPending

// ParseStatus accepts any of the six statuses. Transitions are not
// restricted: every status is reachable from every other one and the last
// write wins.
func ParseStatus(s string) (models.OrderStatus, error) {
	if s == "" {
		return "", apperr.InvalidField("status", "required")
	}
	for _, st := range models.OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", apperr.InvalidField("status", "must be one of "+joinStatuses())
}

func joinStatuses() string {
	names := make([]string, len(models.OrderStatuses))
	for i, st := range models.OrderStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

func validServiceType(s models.ServiceType) bool {
	for _, v := range models.ServiceTypes {
		if v == s {
			return true
		}
	}
	return false
}

func validPaymentMethod(p models.PaymentMethod) bool {
	for _, v := range models.PaymentMethods {
		if v == p {
			return true
		}
	}
	return false
}

// RecomputeTotal sums price*quantity over the lines.
func RecomputeTotal(lines []models.OrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// PrepareNewOrder validates a checkout payload and returns the normalised
// copy that providers store. Nothing is persisted when it fails.
func PrepareNewOrder(in models.NewOrder) (models.NewOrder, error) {
	out := in
	out.CustomerName = strings.TrimSpace(in.CustomerName)
	out.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	out.CustomerAddress = strings.TrimSpace(in.CustomerAddress)
	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		out.Notes = &notes
	}

	f := apperr.FieldErrors{}

	if out.CustomerName == "" {
		f.Add("customerName", "required")
	}
	switch {
	case out.CustomerPhone == "":
		f.Add("customerPhone", "required")
	case len(out.CustomerPhone) < MinPhoneLength:
		f.Add("customerPhone", fmt.Sprintf("must be at least %d characters", MinPhoneLength))
	}

	switch {
	case out.ServiceType == "":
		f.Add("serviceType", "required")
	case !validServiceType(out.ServiceType):
		f.Add("serviceType", "must be one of diantar, diambil, makan ditempat")
	}
	switch {
	case out.PaymentMethod == "":
		f.Add("paymentMethod", "required")
	case !validPaymentMethod(out.PaymentMethod):
		f.Add("paymentMethod", "must be one of cash, bank_transfer, gopay, ovo, dana")
	}

	switch out.ServiceType {
	case models.ServiceDelivery:
		if out.CustomerAddress == "" {
			f.Add("customerAddress", "required for delivery")
		} else if len(out.CustomerAddress) < MinAddressLength {
			f.Add("customerAddress", fmt.Sprintf("must be at least %d characters", MinAddressLength))
		}
	case models.ServicePickup:
		if out.CustomerAddress == "" {
			out.CustomerAddress = PickupAddress
		}
	case models.ServiceDineIn:
		if out.CustomerAddress == "" {
			out.CustomerAddress = DineInAddress
		}
	}

	if len(out.Items) == 0 {
		f.Add("items", "must contain at least one item")
	}
	var sum int64
	overflow := false
	lines := make([]models.OrderLine, len(out.Items))
	for i, l := range out.Items {
		key := fmt.Sprintf("items[%d]", i)
		if l.ID < 1 {
			f.Add(key+".id", "required")
		}
		l.Name = strings.TrimSpace(l.Name)
		if l.Name == "" {
			f.Add(key+".name", "required")
		}
		if l.Price < 1 {
			f.Add(key+".price", "must be greater than 0")
		}
		if l.Quantity < 1 {
			f.Add(key+".quantity", "must be at least 1")
		}
		if l.Price >= 1 && l.Quantity >= 1 {
			switch {
			case l.Price > math.MaxInt64/int64(l.Quantity):
				f.Add(key+".price", "price times quantity is too large")
				overflow = true
			case sum > math.MaxInt64-l.Subtotal():
				f.Add("totalAmount", "sum of the items is too large")
				overflow = true
			default:
				sum += l.Subtotal()
			}
		}
		lines[i] = l
	}
	out.Items = lines

	if len(out.Items) > 0 && !overflow {
		if want := RecomputeTotal(out.Items); out.TotalAmount != want {
			f.Add("totalAmount", fmt.Sprintf("must equal the sum of the items (%d)", want))
		}
	}

	if err := f.Err("Invalid order data"); err != nil {
		return models.NewOrder{}, err
	}
	return out, nil
}
