package repositories

import (
	"testing"

	"cabadmin/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListAvailableExcludesBusyDrivers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT d.id, CONCAT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "info"}).
			AddRow(3, "Asha Verma - 9990001111").
			AddRow(1, "Ravi Kumar - 9990002222"))

	repo := DriverRepository{DB: db}
	drivers, err := repo.ListAvailable()
	if err != nil {
		t.Fatalf("list available error: %v", err)
	}
	if len(drivers) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(drivers))
	}
	if drivers[0].ID != 3 || drivers[0].Info != "Asha Verma - 9990001111" {
		t.Fatalf("unexpected first driver: %+v", drivers[0])
	}
}

func TestDriverGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, first_name").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := DriverRepository{DB: db}
	if _, err := repo.GetByID(5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDriverListAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "first_name", "last_name", "phone", "license_number",
		"rating", "status", "join_date", "vehicle_number", "make", "model", "vehicle_type"}
	mock.ExpectQuery("SELECT d.id, d.first_name").WithArgs("Active", 4.0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Ravi", "Kumar", "9990002222", "DL-0420110012345", 4.6, "Active", "2024-01-10", "KA01AB1234", "Maruti", "Dzire", "Sedan"))

	repo := DriverRepository{DB: db}
	drivers, err := repo.List(DriverFilter{Statuses: []string{"Active"}, MinRating: 4.0})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(drivers) != 1 || drivers[0].VehicleNumber != "KA01AB1234" {
		t.Fatalf("unexpected result: %+v", drivers)
	}
}
