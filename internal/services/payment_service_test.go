package services

import (
	"testing"

	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
	"cabadmin/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPaymentServiceWithMock(t *testing.T) (PaymentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		TripRepo:    repositories.TripRepository{DB: db},
		RequestID:   "test",
	}
	return svc, mock, func() { db.Close() }
}

func TestCreatePaymentOnActiveTrip(t *testing.T) {
	svc, mock, done := newPaymentServiceWithMock(t)
	defer done()

	// the trip only has to exist, not be Completed
	mock.ExpectQuery("SELECT id, user_id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(1, 7, 2, 3, "Airport", "Downtown", "In_Progress", "", "", "", nil, nil))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(1), 320.0, "UPI", "Pending", "UPI-REF-1").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := svc.Create(models.Payment{
		TripID:          1,
		Amount:          320.0,
		PaymentMode:     "UPI",
		ReferenceNumber: "UPI-REF-1",
	})
	if err != nil {
		t.Fatalf("create payment error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	svc, _, done := newPaymentServiceWithMock(t)
	defer done()

	if _, err := svc.Create(models.Payment{TripID: 0, Amount: 100, PaymentMode: "Cash"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for trip_id, got %v", err)
	}
	if _, err := svc.Create(models.Payment{TripID: 1, Amount: 0, PaymentMode: "Cash"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for amount, got %v", err)
	}
	if _, err := svc.Create(models.Payment{TripID: 1, Amount: 100, PaymentMode: "Cheque"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for payment_mode, got %v", err)
	}
}

func TestCreatePaymentUnknownTrip(t *testing.T) {
	svc, mock, done := newPaymentServiceWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, user_id").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()))

	if _, err := svc.Create(models.Payment{TripID: 99, Amount: 100, PaymentMode: "Cash"}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown trip, got %v", err)
	}
}

func TestUpdatePaymentStatusValidation(t *testing.T) {
	svc, _, done := newPaymentServiceWithMock(t)
	defer done()

	if err := svc.UpdateStatus(1, "Settled", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestListUnpaidTrips(t *testing.T) {
	svc, mock, done := newPaymentServiceWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT t.id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "info"}).
			AddRow(5, "Trip #5 - Priya Singh (Rs 320.00)"))

	trips, err := svc.ListUnpaidTrips()
	if err != nil {
		t.Fatalf("list unpaid error: %v", err)
	}
	if len(trips) != 1 || trips[0].ID != 5 {
		t.Fatalf("unexpected result: %+v", trips)
	}
}
