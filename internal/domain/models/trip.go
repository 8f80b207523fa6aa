package models

// Trip is a ride request through its lifecycle. DriverID/VehicleID are zero
// until assignment and are always set together. Distance and Fare stay nil
// until the trip completes.
type Trip struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"user_id"`
	DriverID        int64    `json:"driver_id,omitempty"`
	VehicleID       int64    `json:"vehicle_id,omitempty"`
	PickupLocation  string   `json:"pickup_location"`
	DropoffLocation string   `json:"dropoff_location"`
	Status          string   `json:"status"`
	BookingTime     string   `json:"booking_time"`
	PickupTime      string   `json:"pickup_time,omitempty"`
	DropoffTime     string   `json:"dropoff_time,omitempty"`
	Distance        *float64 `json:"distance,omitempty"`
	Fare            *float64 `json:"fare,omitempty"`

	UserName      string `json:"user_name,omitempty"`
	DriverName    string `json:"driver_name,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// PendingTrip is the quick-assignment view of a waiting request.
type PendingTrip struct {
	ID              int64  `json:"id"`
	UserName        string `json:"user_name"`
	UserPhone       string `json:"user_phone"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
	BookingTime     string `json:"booking_time"`
}

// UnpaidTrip is a completed trip with no payment row yet.
type UnpaidTrip struct {
	ID   int64  `json:"id"`
	Info string `json:"info"`
}
