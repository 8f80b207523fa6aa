package services

import (
	"bytes"
	"testing"

	"cabadmin/internal/domain"
	"cabadmin/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDocsServiceGenerateReceipt(t *testing.T) {
	loader := func(id int64) (receiptData, error) {
		return receiptData{
			TripID:          id,
			UserName:        "Priya Singh",
			DriverName:      "Ravi Kumar",
			VehicleNumber:   "KA01AB1234",
			PickupLocation:  "Airport",
			DropoffLocation: "Downtown",
			BookingTime:     "2026-08-01 10:00:00",
			DropoffTime:     "2026-08-01 10:40:00",
			Distance:        12.5,
			Fare:            320.0,
			PaymentMode:     "UPI",
			PaymentStatus:   "Completed",
			ReferenceNumber: "UPI-REF-1",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateReceipt(1)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateReceipt returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if filename != "RECEIPT_TRIP_1.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestReceiptRequiresCompletedTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "user_id", "driver_id", "vehicle_id",
		"pickup_location", "dropoff_location", "status",
		"booking_time", "pickup_time", "dropoff_time", "distance", "fare",
		"user_name", "driver_name", "vehicle_number"}
	mock.ExpectQuery("SELECT t.id, t.user_id").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, 7, 2, 3, "Airport", "Downtown", "In_Progress",
				"", "", "", nil, nil, "Priya Singh", "Ravi Kumar", "KA01AB1234"))

	svc := DocsService{
		TripRepo:    repositories.TripRepository{DB: db},
		PaymentRepo: repositories.PaymentRepository{DB: db},
	}
	if _, _, err := svc.GenerateReceipt(2); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for non-completed trip, got %v", err)
	}
}
