package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"cabadmin/internal/repositories"
	"cabadmin/internal/utils"
)

// ExportService dumps listing results as delimited text for the dashboard
// export buttons. The header row mirrors the on-screen columns.
type ExportService struct {
	UserRepo    repositories.UserRepository
	DriverRepo  repositories.DriverRepository
	TripRepo    repositories.TripRepository
	PaymentRepo repositories.PaymentRepository
	RequestID   string
}

func (s ExportService) ExportUsers() ([]byte, string, error) {
	users, err := s.UserRepo.List(repositories.UserSearch{})
	if err != nil {
		return nil, "", err
	}

	records := [][]string{{"id", "first_name", "last_name", "phone", "email", "registration_date", "last_login"}}
	for _, u := range users {
		records = append(records, []string{
			strconv.FormatInt(u.ID, 10), u.FirstName, u.LastName,
			u.Phone, u.Email, u.RegistrationDate, u.LastLogin,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "users", strconv.Itoa(len(users))+" rows")
	return data, "users.csv", nil
}

func (s ExportService) ExportDrivers() ([]byte, string, error) {
	drivers, err := s.DriverRepo.List(repositories.DriverFilter{})
	if err != nil {
		return nil, "", err
	}

	records := [][]string{{"id", "first_name", "last_name", "phone", "license_number", "rating", "status", "join_date", "vehicle_number", "vehicle_type"}}
	for _, d := range drivers {
		records = append(records, []string{
			strconv.FormatInt(d.ID, 10), d.FirstName, d.LastName,
			d.Phone, d.LicenseNumber, utils.FormatMoney(d.Rating),
			d.Status, d.JoinDate, d.VehicleNumber, d.VehicleType,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "drivers", strconv.Itoa(len(drivers))+" rows")
	return data, "drivers.csv", nil
}

func (s ExportService) ExportTrips() ([]byte, string, error) {
	trips, err := s.TripRepo.List(repositories.TripFilter{})
	if err != nil {
		return nil, "", err
	}

	records := [][]string{{"id", "status", "user_name", "driver_name", "vehicle_number", "pickup_location", "dropoff_location", "booking_time", "pickup_time", "dropoff_time", "distance", "fare"}}
	for _, t := range trips {
		records = append(records, []string{
			strconv.FormatInt(t.ID, 10), t.Status, t.UserName, t.DriverName,
			t.VehicleNumber, t.PickupLocation, t.DropoffLocation,
			t.BookingTime, t.PickupTime, t.DropoffTime,
			floatPtrField(t.Distance), floatPtrField(t.Fare),
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "trips", strconv.Itoa(len(trips))+" rows")
	return data, "trips.csv", nil
}

func (s ExportService) ExportPayments() ([]byte, string, error) {
	payments, err := s.PaymentRepo.List(repositories.PaymentFilter{})
	if err != nil {
		return nil, "", err
	}

	records := [][]string{{"id", "trip_id", "amount", "payment_mode", "payment_status", "reference_number", "payment_datetime", "user_name"}}
	for _, p := range payments {
		records = append(records, []string{
			strconv.FormatInt(p.ID, 10), strconv.FormatInt(p.TripID, 10),
			utils.FormatMoney(p.Amount), p.PaymentMode, p.PaymentStatus,
			p.ReferenceNumber, p.PaymentDateTime, p.UserName,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "payments", strconv.Itoa(len(payments))+" rows")
	return data, "payments.csv", nil
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func floatPtrField(v *float64) string {
	if v == nil {
		return ""
	}
	return utils.FormatMoney(*v)
}
