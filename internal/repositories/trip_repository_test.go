package repositories

import (
	"testing"

	"cabadmin/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAssignLocksAndAccepts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

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

	repo := TripRepository{DB: db}
	if err := repo.Assign(1, 2, 3); err != nil {
		t.Fatalf("assign error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignRejectsClaimedDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM trips").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Pending"))
	mock.ExpectQuery("SELECT d.id FROM drivers d").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	repo := TripRepository{DB: db}
	err = repo.Assign(1, 2, 3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for claimed driver, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignRejectsNonPendingTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM trips").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Accepted"))
	mock.ExpectRollback()

	repo := TripRepository{DB: db}
	if err := repo.Assign(1, 2, 3); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for non-pending trip, got %v", err)
	}
}

func TestAssignMissingTripNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM trips").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	repo := TripRepository{DB: db}
	if err := repo.Assign(99, 2, 3); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCompleteWrongStateConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trips").WithArgs(12.5, 320.0, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	repo := TripRepository{DB: db}
	if err := repo.Complete(9, 12.5, 320.0); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for completed trip, got %v", err)
	}
}

func TestCompleteMissingTripNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trips").WithArgs(12.5, 320.0, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	repo := TripRepository{DB: db}
	if err := repo.Complete(9, 12.5, 320.0); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCancelOnlyTouchesNonTerminalTrips(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trips").WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TripRepository{DB: db}
	if err := repo.Cancel(4); err != nil {
		t.Fatalf("cancel error: %v", err)
	}
}

func TestListAppliesStatusAndDateFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "user_id", "driver_id", "vehicle_id",
		"pickup_location", "dropoff_location", "status",
		"booking_time", "pickup_time", "dropoff_time", "distance", "fare",
		"user_name", "driver_name", "vehicle_number"}
	mock.ExpectQuery("SELECT t.id, t.user_id").
		WithArgs("Completed", "2026-08-01", "2026-08-31").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 7, 2, 3, "Airport", "Downtown", "Completed",
				"2026-08-01 10:00:00", "2026-08-01 10:05:00", "2026-08-01 10:40:00",
				12.5, 320.0, "Priya Singh", "Ravi Kumar", "KA01AB1234"))

	repo := TripRepository{DB: db}
	trips, err := repo.List(TripFilter{
		Statuses: []string{"Completed"},
		FromDate: "2026-08-01",
		ToDate:   "2026-08-31",
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(trips) != 1 || trips[0].Fare == nil || *trips[0].Fare != 320.0 {
		t.Fatalf("unexpected result: %+v", trips)
	}
}

func TestCreateInsertsPendingRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO trips").WithArgs(int64(7), "Airport", "Downtown").
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := TripRepository{DB: db}
	id, err := repo.Create(7, "Airport", "Downtown")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}
