package services

import (
	"bytes"
	"fmt"
	"strings"

	"cabadmin/internal/domain"
	"cabadmin/internal/repositories"
	"cabadmin/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable trip receipt.
type DocsService struct {
	TripRepo    repositories.TripRepository
	PaymentRepo repositories.PaymentRepository
	RequestID   string
	Loader      func(int64) (receiptData, error)
}

type receiptData struct {
	TripID          int64
	UserName        string
	DriverName      string
	VehicleNumber   string
	PickupLocation  string
	DropoffLocation string
	BookingTime     string
	DropoffTime     string
	Distance        float64
	Fare            float64
	PaymentMode     string
	PaymentStatus   string
	ReferenceNumber string
}

// GenerateReceipt builds a PDF receipt for a completed trip.
func (s DocsService) GenerateReceipt(tripID int64) ([]byte, string, error) {
	data, err := s.loadReceiptData(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("trip_id=%d", tripID))
	return buildReceiptPDF(data)
}

func (s DocsService) loadReceiptData(tripID int64) (receiptData, error) {
	if s.Loader != nil {
		return s.Loader(tripID)
	}

	trip, err := s.TripRepo.GetDetail(tripID)
	if err != nil {
		return receiptData{}, err
	}
	if trip.Status != string(domain.TripCompleted) {
		return receiptData{}, domain.ConflictError{Resource: "trip", Msg: "receipt is only available for completed trips"}
	}

	out := receiptData{
		TripID:          trip.ID,
		UserName:        trip.UserName,
		DriverName:      trip.DriverName,
		VehicleNumber:   trip.VehicleNumber,
		PickupLocation:  trip.PickupLocation,
		DropoffLocation: trip.DropoffLocation,
		BookingTime:     trip.BookingTime,
		DropoffTime:     trip.DropoffTime,
	}
	if trip.Distance != nil {
		out.Distance = *trip.Distance
	}
	if trip.Fare != nil {
		out.Fare = *trip.Fare
	}

	if payment, err := s.PaymentRepo.GetLatestByTripID(tripID); err == nil {
		out.PaymentMode = payment.PaymentMode
		out.PaymentStatus = payment.PaymentStatus
		out.ReferenceNumber = payment.ReferenceNumber
	}

	return out, nil
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip          : #%d", d.TripID),
		fmt.Sprintf("Rider         : %s", orDash(d.UserName)),
		fmt.Sprintf("Driver        : %s", orDash(d.DriverName)),
		fmt.Sprintf("Vehicle       : %s", orDash(d.VehicleNumber)),
		fmt.Sprintf("From          : %s", orDash(d.PickupLocation)),
		fmt.Sprintf("To            : %s", orDash(d.DropoffLocation)),
		fmt.Sprintf("Booked        : %s", orDash(d.BookingTime)),
		fmt.Sprintf("Dropped off   : %s", orDash(d.DropoffTime)),
		fmt.Sprintf("Distance      : %.2f km", d.Distance),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Fare: "+utils.FormatRupee(d.Fare))
	pdf.Ln(10)

	if d.PaymentMode != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Paid via %s (%s)", d.PaymentMode, d.PaymentStatus))
		pdf.Ln(6)
		if d.ReferenceNumber != "" {
			pdf.Cell(0, 6, "Reference: "+d.ReferenceNumber)
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_TRIP_%d.pdf", d.TripID)
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
