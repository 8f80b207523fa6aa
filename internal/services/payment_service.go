package services

import (
	"fmt"

	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
	"cabadmin/internal/repositories"
	"cabadmin/internal/utils"
)

// PaymentService records and settles trip payments. Payment creation is
// deliberately independent of the trip state machine: the trip must exist,
// but it does not have to be Completed. The unpaid-trips view the operators
// pick from is derived, not enforced.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	TripRepo    repositories.TripRepository
	RequestID   string
}

func (s PaymentService) List(f repositories.PaymentFilter) ([]models.Payment, error) {
	return s.PaymentRepo.List(f)
}

func (s PaymentService) Get(id int64) (models.Payment, error) {
	if id <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "payment_id", Msg: "must be positive"}
	}
	return s.PaymentRepo.GetByID(id)
}

func (s PaymentService) Create(p models.Payment) (int64, error) {
	if p.TripID <= 0 {
		return 0, domain.ValidationError{Field: "trip_id", Msg: "must be positive"}
	}
	if p.Amount <= 0 {
		return 0, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	if !domain.PaymentMode(p.PaymentMode).Valid() {
		return 0, domain.ValidationError{Field: "payment_mode", Msg: "unknown mode " + p.PaymentMode}
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = string(domain.PaymentPending)
	}
	if !domain.PaymentStatus(p.PaymentStatus).Valid() {
		return 0, domain.ValidationError{Field: "payment_status", Msg: "unknown status " + p.PaymentStatus}
	}

	if _, err := s.TripRepo.GetByID(p.TripID); err != nil {
		return 0, err
	}

	id, err := s.PaymentRepo.Create(p)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "payment", "create",
		fmt.Sprintf("payment_id=%d trip_id=%d amount=%.2f", id, p.TripID, p.Amount))
	return id, nil
}

func (s PaymentService) UpdateStatus(id int64, status, reference string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "payment_id", Msg: "must be positive"}
	}
	if !domain.PaymentStatus(status).Valid() {
		return domain.ValidationError{Field: "payment_status", Msg: "unknown status " + status}
	}
	if err := s.PaymentRepo.UpdateStatus(id, status, reference); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "payment", "update_status",
		fmt.Sprintf("payment_id=%d status=%s", id, status))
	return nil
}

func (s PaymentService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "payment_id", Msg: "must be positive"}
	}
	return s.PaymentRepo.Delete(id)
}

func (s PaymentService) ListUnpaidTrips() ([]models.UnpaidTrip, error) {
	return s.PaymentRepo.ListUnpaidTrips()
}
