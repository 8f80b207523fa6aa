package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
	"cabadmin/internal/repositories"

	"github.com/gin-gonic/gin"
)

type driverInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"license_number"`
	Rating        float64 `json:"rating"`
	Status        string  `json:"status"`
}

func (in *driverInput) validate(c *gin.Context) bool {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	in.Status = strings.TrimSpace(in.Status)

	if in.FirstName == "" || in.LastName == "" || in.Phone == "" || in.LicenseNumber == "" {
		respondError(c, http.StatusBadRequest, "validation_error",
			"first_name, last_name, phone and license_number are required", nil)
		return false
	}
	if in.Status == "" {
		in.Status = string(domain.DriverActive)
	}
	if !domain.DriverStatus(in.Status).Valid() {
		respondError(c, http.StatusBadRequest, "validation_error", "unknown driver status "+in.Status, nil)
		return false
	}
	if in.Rating < 0 || in.Rating > 5 {
		respondError(c, http.StatusBadRequest, "validation_error", "rating must be between 0.0 and 5.0", nil)
		return false
	}
	return true
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)
	repo := repositories.DriverRepository{}
	drivers, err := repo.List(repositories.DriverFilter{
		Statuses:  QueryList(c, "status"),
		MinRating: minRating,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// GET /api/drivers/:id
func GetDriverByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.DriverRepository{}
	driver, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// GET /api/drivers/available
func GetAvailableDrivers(c *gin.Context) {
	svc := newTripService(c)
	drivers, err := svc.ListAvailableDrivers()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var in driverInput
	if !BindJSONOrError(c, &in) || !in.validate(c) {
		return
	}

	repo := repositories.DriverRepository{}
	id, err := repo.Create(models.Driver{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		Rating:        in.Rating,
		Status:        in.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in driverInput
	if !BindJSONOrError(c, &in) || !in.validate(c) {
		return
	}

	repo := repositories.DriverRepository{}
	if err := repo.Update(id, models.Driver{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		Rating:        in.Rating,
		Status:        in.Status,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.DriverRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
