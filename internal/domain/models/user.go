package models

// User is a rider account that can request trips.
type User struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
	LastLogin        string `json:"last_login,omitempty"`
}
