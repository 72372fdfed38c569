package utils

import (
	"strconv"
	"strings"
)

// FormatRupiah formats whole Rupiah with dot thousands separators.
// Example: 15000 -> "Rp 15.000", -2500 -> "-Rp 2.500"
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	// Sisipkan titik setiap tiga digit dari kanan
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + "Rp " + b.String()
}

// FormatPhoneNumber normalises an Indonesian phone number to +62 form.
// "0812-3456-7890" -> "+6281234567890"
func FormatPhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	switch {
	case strings.HasPrefix(cleaned, "08"):
		return "+62" + cleaned[1:]
	case strings.HasPrefix(cleaned, "62"):
		return "+" + cleaned
	default:
		return "+62" + cleaned
	}
}
