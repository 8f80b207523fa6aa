package models

// Driver is a cab driver record. Vehicle fields come from the optional
// assigned vehicle join and stay empty when no vehicle is assigned.
type Driver struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"license_number"`
	Rating        float64 `json:"rating"`
	Status        string  `json:"status"`
	JoinDate      string  `json:"join_date"`

	VehicleNumber string `json:"vehicle_number,omitempty"`
	VehicleMake   string `json:"vehicle_make,omitempty"`
	VehicleModel  string `json:"vehicle_model,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
}

// AvailableDriver is the dropdown row for assignment pickers.
type AvailableDriver struct {
	ID   int64  `json:"id"`
	Info string `json:"info"`
}
