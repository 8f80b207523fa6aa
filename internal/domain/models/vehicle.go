package models

// Vehicle is a fleet vehicle, optionally assigned to a driver.
type Vehicle struct {
	ID               int64  `json:"id"`
	DriverID         int64  `json:"driver_id,omitempty"`
	VehicleType      string `json:"vehicle_type"`
	VehicleNumber    string `json:"vehicle_number"`
	Make             string `json:"make"`
	Model            string `json:"model"`
	Year             int    `json:"year"`
	Status           string `json:"status"`
	RegistrationDate string `json:"registration_date"`
	AssignmentDate   string `json:"assignment_date,omitempty"`

	StandardCapacity int    `json:"standard_capacity,omitempty"`
	DriverName       string `json:"driver_name,omitempty"`
	DriverPhone      string `json:"driver_phone,omitempty"`
}

// VehicleType is a catalog entry describing a vehicle class.
type VehicleType struct {
	VehicleType      string  `json:"vehicle_type"`
	StandardCapacity int     `json:"standard_capacity"`
	BaseFarePerKm    float64 `json:"base_fare_per_km"`
}

// AvailableVehicle is the dropdown row for assignment pickers.
type AvailableVehicle struct {
	ID   int64  `json:"id"`
	Info string `json:"info"`
}
