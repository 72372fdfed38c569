package orders

import (
	"fmt"

	"github.com/yeremiapane/seblak-listyaning/models"
	"github.com/yeremiapane/seblak-listyaning/utils"
)

// ReceiptNumber is derived from the creation date and id, e.g. SL-20261019-0042.
func ReceiptNumber(o models.Order) string {
	return fmt.Sprintf("SL-%s-%04d", o.CreatedAt.Format("20060102"), o.ID)
}

// BuildReceipt projects an order into the receipt view.
func BuildReceipt(o models.Order) models.Receipt {
	r := models.Receipt{
		OrderID:         o.ID,
		ReceiptNumber:   ReceiptNumber(o),
		CustomerName:    o.CustomerName,
		CustomerPhone:   utils.FormatPhoneNumber(o.CustomerPhone),
		CustomerAddress: o.CustomerAddress,
		ServiceType:     o.ServiceType,
		ServiceLabel:    ServiceTypeText(o.ServiceType),
		PaymentMethod:   o.PaymentMethod,
		PaymentLabel:    PaymentMethodText(o.PaymentMethod),
		Status:          o.Status,
		StatusLabel:     StatusText(o.Status),
		Notes:           o.Notes,
		Lines:           make([]models.ReceiptLine, len(o.Items)),
		Total:           o.TotalAmount,
		TotalText:       utils.FormatRupiah(o.TotalAmount),
		CreatedAt:       o.CreatedAt,
	}
	for i, l := range o.Items {
		r.Lines[i] = models.ReceiptLine{
			MenuItemID:    l.ID,
			Name:          l.Name,
			Quantity:      l.Quantity,
			UnitPrice:     l.Price,
			UnitPriceText: utils.FormatRupiah(l.Price),
			Subtotal:      l.Subtotal(),
			SubtotalText:  utils.FormatRupiah(l.Subtotal()),
		}
		r.TotalItems += l.Quantity
	}
	return r
}

// Stats summarises orders for the admin dashboard.
type Stats struct {
	Total    int                        `json:"total"`
	ByStatus map[models.OrderStatus]int `json:"byStatus"`
	Active   int                        `json:"active"`
	Revenue  int64                      `json:"revenue"`
}

// CalculateStats counts orders per status. Revenue excludes cancelled orders.
func CalculateStats(list []models.Order) Stats {
	s := Stats{Total: len(list), ByStatus: make(map[models.OrderStatus]int, len(models.OrderStatuses))}
	for _, st := range models.OrderStatuses {
		s.ByStatus[st] = 0
	}
	for _, o := range list {
		s.ByStatus[o.Status]++
		if !IsTerminal(o.Status) {
			s.Active++
		}
		if o.Status != models.StatusCancelled {
			s.Revenue += o.TotalAmount
		}
	}
	return s
}
