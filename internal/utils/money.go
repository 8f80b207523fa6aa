package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupee renders an amount with the currency marker used across the
// dashboard views.
func FormatRupee(amount float64) string {
	return fmt.Sprintf("Rs %.2f", amount)
}
