package services

import (
	"testing"

	"cabadmin/internal/domain"
	"cabadmin/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTripServiceWithMock(t *testing.T) (TripService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := TripService{
		TripRepo:    repositories.TripRepository{DB: db},
		UserRepo:    repositories.UserRepository{DB: db},
		DriverRepo:  repositories.DriverRepository{DB: db},
		VehicleRepo: repositories.VehicleRepository{DB: db},
		RequestID:   "test",
	}
	return svc, mock, func() { db.Close() }
}

func tripRowCols() []string {
	return []string{"id", "user_id", "driver_id", "vehicle_id",
		"pickup_location", "dropoff_location", "status",
		"booking_time", "pickup_time", "dropoff_time", "distance", "fare"}
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _, done := newTripServiceWithMock(t)
	defer done()

	if _, err := svc.CreateRequest(0, "A", "B"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for user_id, got %v", err)
	}
	if _, err := svc.CreateRequest(1, "  ", "B"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for pickup, got %v", err)
	}
	if _, err := svc.CreateRequest(1, "A", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for dropoff, got %v", err)
	}
}

func TestCreateRequestUnknownUser(t *testing.T) {
	svc, mock, done := newTripServiceWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	if _, err := svc.CreateRequest(7, "Airport", "Downtown"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}
}

func TestAssignThenCompleteFlow(t *testing.T) {
	svc, mock, done := newTripServiceWithMock(t)
	defer done()

	// assignment transaction
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM trips").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Pending"))
	mock.ExpectQuery("SELECT d.id FROM drivers d").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("SELECT v.id FROM vehicles v").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("UPDATE trips").WithArgs(int64(2), int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// completion: status check then conditional update
	mock.ExpectQuery("SELECT id, user_id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(1, 7, 2, 3, "Airport", "Downtown", "Accepted", "2026-08-01 10:00:00", "2026-08-01 10:05:00", "", nil, nil))
	mock.ExpectExec("UPDATE trips").WithArgs(12.5, 320.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Assign(1, 2, 3); err != nil {
		t.Fatalf("assign error: %v", err)
	}
	if err := svc.Complete(1, 12.5, 320.0); err != nil {
		t.Fatalf("complete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompleteRejectsTerminalTrip(t *testing.T) {
	svc, mock, done := newTripServiceWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, user_id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(1, 7, 2, 3, "Airport", "Downtown", "Completed", "", "", "", 12.5, 320.0))

	err := svc.Complete(1, 9.0, 100.0)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for terminal trip, got %v", err)
	}
}

func TestCompleteRejectsNegativeInputs(t *testing.T) {
	svc, _, done := newTripServiceWithMock(t)
	defer done()

	if err := svc.Complete(1, -1, 100); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for distance, got %v", err)
	}
	if err := svc.Complete(1, 1, -100); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for fare, got %v", err)
	}
}

func TestStartRejectsPendingTrip(t *testing.T) {
	svc, mock, done := newTripServiceWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, user_id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(1, 7, 0, 0, "Airport", "Downtown", "Pending", "", "", "", nil, nil))

	if err := svc.Start(1); !domain.IsConflict(err) {
		t.Fatalf("expected conflict starting a pending trip, got %v", err)
	}
}

func TestCancelPendingTrip(t *testing.T) {
	svc, mock, done := newTripServiceWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, user_id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(1, 7, 0, 0, "Airport", "Downtown", "Pending", "", "", "", nil, nil))
	mock.ExpectExec("UPDATE trips").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Cancel(1); err != nil {
		t.Fatalf("cancel error: %v", err)
	}
}
