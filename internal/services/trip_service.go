package services

import (
	"fmt"
	"strings"

	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
	"cabadmin/internal/repositories"
	"cabadmin/internal/utils"
)

// TripService owns the trip lifecycle: request creation, availability
// lookups, assignment, start, completion and cancellation. Every transition
// is validated against the domain transition table before the repository
// runs its status-conditional update.
type TripService struct {
	TripRepo    repositories.TripRepository
	UserRepo    repositories.UserRepository
	DriverRepo  repositories.DriverRepository
	VehicleRepo repositories.VehicleRepository
	RequestID   string
}

func (s TripService) List(f repositories.TripFilter) ([]models.Trip, error) {
	return s.TripRepo.List(f)
}

func (s TripService) Get(tripID int64) (models.Trip, error) {
	if tripID <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "trip_id", Msg: "must be positive"}
	}
	return s.TripRepo.GetDetail(tripID)
}

func (s TripService) ListPending() ([]models.PendingTrip, error) {
	return s.TripRepo.ListPending()
}

// CreateRequest opens a new trip in Pending for an existing user.
func (s TripService) CreateRequest(userID int64, pickup, dropoff string) (int64, error) {
	pickup = strings.TrimSpace(pickup)
	dropoff = strings.TrimSpace(dropoff)

	if userID <= 0 {
		return 0, domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}
	if pickup == "" {
		return 0, domain.ValidationError{Field: "pickup_location", Msg: "required"}
	}
	if dropoff == "" {
		return 0, domain.ValidationError{Field: "dropoff_location", Msg: "required"}
	}

	ok, err := s.UserRepo.Exists(userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.NotFoundError{Resource: "user"}
	}

	id, err := s.TripRepo.Create(userID, pickup, dropoff)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%d user_id=%d", id, userID))
	return id, nil
}

func (s TripService) ListAvailableDrivers() ([]models.AvailableDriver, error) {
	return s.DriverRepo.ListAvailable()
}

func (s TripService) ListAvailableVehicles() ([]models.AvailableVehicle, error) {
	return s.VehicleRepo.ListAvailable()
}

// Assign binds driver and vehicle to a pending trip. The repository holds
// the row locks, so a concurrent assignment of the same driver or vehicle
// loses with a conflict instead of double-booking.
func (s TripService) Assign(tripID, driverID, vehicleID int64) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "must be positive"}
	}
	if driverID <= 0 {
		return domain.ValidationError{Field: "driver_id", Msg: "must be positive"}
	}
	if vehicleID <= 0 {
		return domain.ValidationError{Field: "vehicle_id", Msg: "must be positive"}
	}

	if err := s.TripRepo.Assign(tripID, driverID, vehicleID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "assign",
		fmt.Sprintf("trip_id=%d driver_id=%d vehicle_id=%d", tripID, driverID, vehicleID))
	return nil
}

// Start is the operator-driven Accepted to In_Progress transition.
func (s TripService) Start(tripID int64) error {
	if err := s.checkTransition(tripID, domain.TripInProgress); err != nil {
		return err
	}
	if err := s.TripRepo.Start(tripID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "start", fmt.Sprintf("trip_id=%d", tripID))
	return nil
}

// Complete records close-out data on an active trip. Terminal re-invocation
// is rejected, so distance and fare cannot be silently overwritten.
func (s TripService) Complete(tripID int64, distance, fare float64) error {
	if distance < 0 {
		return domain.ValidationError{Field: "distance", Msg: "cannot be negative"}
	}
	if fare < 0 {
		return domain.ValidationError{Field: "fare", Msg: "cannot be negative"}
	}
	if err := s.checkTransition(tripID, domain.TripCompleted); err != nil {
		return err
	}
	if err := s.TripRepo.Complete(tripID, distance, fare); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "complete",
		fmt.Sprintf("trip_id=%d distance=%.2f fare=%.2f", tripID, distance, fare))
	return nil
}

// Cancel moves any non-terminal trip to Cancelled.
func (s TripService) Cancel(tripID int64) error {
	if err := s.checkTransition(tripID, domain.TripCancelled); err != nil {
		return err
	}
	if err := s.TripRepo.Cancel(tripID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "cancel", fmt.Sprintf("trip_id=%d", tripID))
	return nil
}

func (s TripService) Delete(tripID int64) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "must be positive"}
	}
	if err := s.TripRepo.Delete(tripID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "trip", "delete", fmt.Sprintf("trip_id=%d", tripID))
	return nil
}

// checkTransition loads the current status and rejects illegal edges up
// front. The repository's conditional update still guards against a status
// change racing in between.
func (s TripService) checkTransition(tripID int64, to domain.TripStatus) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "trip_id", Msg: "must be positive"}
	}
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return err
	}
	from, ok := domain.ParseTripStatus(trip.Status)
	if !ok {
		return domain.InternalError{Msg: "trip has unknown status " + trip.Status}
	}
	if !domain.CanTransition(from, to) {
		return domain.ConflictError{
			Resource: "trip",
			Msg:      fmt.Sprintf("cannot move from %s to %s", from, to),
		}
	}
	return nil
}
