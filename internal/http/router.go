package api

import (
	"log"
	stdhttp "net/http"

	intconfig "cabadmin/internal/config"
	h "cabadmin/internal/http/handlers"
	"cabadmin/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Users
		users := api.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Drivers
		drivers := api.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.GET("/available", h.GetAvailableDrivers)
		drivers.GET("/:id", h.GetDriverByID)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		// Vehicles
		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/available", h.GetAvailableVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		api.GET("/vehicle-types", h.GetVehicleTypes)

		// Trips and the assignment workflow
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/pending", h.GetPendingTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.GET("/:id/receipt", h.GetTripReceipt)
		trips.POST("", h.CreateTrip)
		trips.POST("/:id/assign", h.AssignTrip)
		trips.POST("/:id/start", h.StartTrip)
		trips.POST("/:id/complete", h.CompleteTrip)
		trips.POST("/:id/cancel", h.CancelTrip)
		trips.DELETE("/:id", h.DeleteTrip)

		// Payments
		payments := api.Group("/payments")
		payments.GET("", h.GetPayments)
		payments.GET("/unpaid-trips", h.GetUnpaidTrips)
		payments.GET("/:id", h.GetPaymentByID)
		payments.POST("", h.CreatePayment)
		payments.PUT("/:id/status", h.UpdatePaymentStatus)
		payments.DELETE("/:id", h.DeletePayment)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/dashboard", h.GetDashboard)
		reports.GET("/trip-status-distribution", h.GetTripStatusDistribution)
		reports.GET("/revenue-by-vehicle-type", h.GetRevenueByVehicleType)
		reports.GET("/payment-mode-summary", h.GetPaymentModeSummary)

		// CSV exports
		exports := api.Group("/exports")
		exports.GET("/users", h.ExportUsersCSV)
		exports.GET("/drivers", h.ExportDriversCSV)
		exports.GET("/trips", h.ExportTripsCSV)
		exports.GET("/payments", h.ExportPaymentsCSV)
	}

	return r
}
