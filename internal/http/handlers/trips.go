package handlers

import (
	"net/http"
	"strings"

	"cabadmin/internal/http/middleware"
	"cabadmin/internal/repositories"
	"cabadmin/internal/services"
	"cabadmin/internal/utils"

	"github.com/gin-gonic/gin"
)

func newTripService(c *gin.Context) services.TripService {
	return services.TripService{
		TripRepo:    repositories.TripRepository{},
		UserRepo:    repositories.UserRepository{},
		DriverRepo:  repositories.DriverRepository{},
		VehicleRepo: repositories.VehicleRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type tripCreateInput struct {
	UserID          int64  `json:"user_id"`
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`
}

type tripAssignInput struct {
	DriverID  int64 `json:"driver_id"`
	VehicleID int64 `json:"vehicle_id"`
}

type tripCompleteInput struct {
	Distance float64 `json:"distance"`
	Fare     float64 `json:"fare"`
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	filter := repositories.TripFilter{
		Statuses: QueryList(c, "status"),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	var ok bool
	if filter.FromDate, ok = queryDate(c, "from"); !ok {
		return
	}
	if filter.ToDate, ok = queryDate(c, "to"); !ok {
		return
	}

	svc := newTripService(c)
	trips, err := svc.List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// queryDate validates an optional YYYY-MM-DD query parameter.
func queryDate(c *gin.Context, key string) (string, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return "", true
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", key+" must be YYYY-MM-DD", nil)
		return "", false
	}
	return utils.FormatDate(d), true
}

// GET /api/trips/pending
func GetPendingTrips(c *gin.Context) {
	svc := newTripService(c)
	trips, err := svc.ListPending()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := newTripService(c)
	trip, err := svc.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var in tripCreateInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := newTripService(c)
	id, err := svc.CreateRequest(in.UserID, in.PickupLocation, in.DropoffLocation)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": "Pending"})
}

// POST /api/trips/:id/assign
func AssignTrip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in tripAssignInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := newTripService(c)
	if err := svc.Assign(id, in.DriverID, in.VehicleID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "Accepted"})
}

// POST /api/trips/:id/start
func StartTrip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := newTripService(c)
	if err := svc.Start(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "In_Progress"})
}

// POST /api/trips/:id/complete
func CompleteTrip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in tripCompleteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	svc := newTripService(c)
	if err := svc.Complete(id, in.Distance, in.Fare); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "Completed"})
}

// POST /api/trips/:id/cancel
func CancelTrip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := newTripService(c)
	if err := svc.Cancel(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "Cancelled"})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := newTripService(c)
	if err := svc.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/trips/:id/receipt
func GetTripReceipt(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	svc := services.DocsService{
		TripRepo:    repositories.TripRepository{},
		PaymentRepo: repositories.PaymentRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
