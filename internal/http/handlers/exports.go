package handlers

import (
	"net/http"

	"cabadmin/internal/http/middleware"
	"cabadmin/internal/repositories"
	"cabadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func newExportService(c *gin.Context) services.ExportService {
	return services.ExportService{
		UserRepo:    repositories.UserRepository{},
		DriverRepo:  repositories.DriverRepository{},
		TripRepo:    repositories.TripRepository{},
		PaymentRepo: repositories.PaymentRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

func serveCSV(c *gin.Context, data []byte, filename string, err error) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// GET /api/exports/users
func ExportUsersCSV(c *gin.Context) {
	data, filename, err := newExportService(c).ExportUsers()
	serveCSV(c, data, filename, err)
}

// GET /api/exports/drivers
func ExportDriversCSV(c *gin.Context) {
	data, filename, err := newExportService(c).ExportDrivers()
	serveCSV(c, data, filename, err)
}

// GET /api/exports/trips
func ExportTripsCSV(c *gin.Context) {
	data, filename, err := newExportService(c).ExportTrips()
	serveCSV(c, data, filename, err)
}

// GET /api/exports/payments
func ExportPaymentsCSV(c *gin.Context) {
	data, filename, err := newExportService(c).ExportPayments()
	serveCSV(c, data, filename, err)
}
