package handlers

import (
	"net/http"
	"strings"

	"cabadmin/internal/domain/models"
	"cabadmin/internal/http/middleware"
	"cabadmin/internal/repositories"
	"cabadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func newPaymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		PaymentRepo: repositories.PaymentRepository{},
		TripRepo:    repositories.TripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type paymentInput struct {
	TripID          int64   `json:"trip_id"`
	Amount          float64 `json:"amount"`
	PaymentMode     string  `json:"payment_mode"`
	PaymentStatus   string  `json:"payment_status"`
	ReferenceNumber string  `json:"reference_number"`
}

type paymentStatusInput struct {
	PaymentStatus   string `json:"payment_status"`
	ReferenceNumber string `json:"reference_number"`
}

// GET /api/payments
func GetPayments(c *gin.Context) {
	svc := newPaymentService(c)
	payments, err := svc.List(repositories.PaymentFilter{
		Statuses: QueryList(c, "status"),
		Modes:    QueryList(c, "mode"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/payments/:id
func GetPaymentByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := newPaymentService(c)
	payment, err := svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GET /api/payments/unpaid-trips
func GetUnpaidTrips(c *gin.Context) {
	svc := newPaymentService(c)
	trips, err := svc.ListUnpaidTrips()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var in paymentInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := newPaymentService(c)
	id, err := svc.Create(models.Payment{
		TripID:          in.TripID,
		Amount:          in.Amount,
		PaymentMode:     strings.TrimSpace(in.PaymentMode),
		PaymentStatus:   strings.TrimSpace(in.PaymentStatus),
		ReferenceNumber: strings.TrimSpace(in.ReferenceNumber),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/payments/:id/status
func UpdatePaymentStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in paymentStatusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := newPaymentService(c)
	if err := svc.UpdateStatus(id, strings.TrimSpace(in.PaymentStatus), strings.TrimSpace(in.ReferenceNumber)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "payment_status": in.PaymentStatus})
}

// DELETE /api/payments/:id
func DeletePayment(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := newPaymentService(c)
	if err := svc.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
