package handlers

import (
	"net/http"

	"cabadmin/internal/repositories"
	"cabadmin/internal/services"

	"github.com/gin-gonic/gin"
)

func newReportsService() services.ReportsService {
	return services.ReportsService{StatsRepo: repositories.StatsRepository{}}
}

// GET /api/reports/dashboard
func GetDashboard(c *gin.Context) {
	report, err := newReportsService().Dashboard()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/trip-status-distribution
func GetTripStatusDistribution(c *gin.Context) {
	rows, err := newReportsService().TripStatusDistribution()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/reports/revenue-by-vehicle-type
func GetRevenueByVehicleType(c *gin.Context) {
	rows, err := newReportsService().RevenueByVehicleType()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/reports/payment-mode-summary
func GetPaymentModeSummary(c *gin.Context) {
	rows, err := newReportsService().PaymentModeSummary()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
