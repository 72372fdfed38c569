package orders

import (
	"strings"

	"github.com/yeremiapane/seblak-listyaning/models"
)

func StatusText(status models.OrderStatus) string {
	switch status {
	case models.StatusPending:
		return "Menunggu"
	case models.StatusConfirmed:
		return "Dikonfirmasi"
	case models.StatusPreparing:
		return "Sedang Dimasak"
	case models.StatusReady:
		return "Siap"
	case models.StatusDelivered:
		return "Selesai"
	case models.StatusCancelled:
		return "Dibatalkan"
	default:
		return string(status)
	}
}

func PaymentMethodText(method models.PaymentMethod) string {
	switch method {
	case models.PaymentCash:
		return "Tunai"
	case models.PaymentBankTransfer:
		return "Transfer Bank"
	case models.PaymentGoPay:
		return "GoPay"
	case models.PaymentOVO:
		return "OVO"
	case models.PaymentDANA:
		return "DANA"
	default:
		return strings.ToUpper(string(method))
	}
}

func ServiceTypeText(service models.ServiceType) string {
	switch service {
	case models.ServiceDelivery:
		return "Diantar"
	case models.ServicePickup:
		return "Ambil Sendiri"
	case models.ServiceDineIn:
		return "Makan di Tempat"
	default:
		return string(service)
	}
}
