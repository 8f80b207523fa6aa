package models

// Payment references exactly one trip. A trip may carry more than one
// payment row; the unpaid-trips listing is derived, not a constraint.
type Payment struct {
	ID              int64   `json:"id"`
	TripID          int64   `json:"trip_id"`
	Amount          float64 `json:"amount"`
	PaymentMode     string  `json:"payment_mode"`
	PaymentStatus   string  `json:"payment_status"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	PaymentDateTime string  `json:"payment_datetime"`

	UserName string   `json:"user_name,omitempty"`
	TripFare *float64 `json:"trip_fare,omitempty"`
}
