package handlers

import (
	"net/http"
	"strings"
	"time"

	"cabadmin/internal/domain"
	"cabadmin/internal/domain/models"
	"cabadmin/internal/repositories"

	"github.com/gin-gonic/gin"
)

type vehicleInput struct {
	DriverID      int64  `json:"driver_id"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Status        string `json:"status"`
}

func (in *vehicleInput) validate(c *gin.Context) bool {
	in.VehicleType = strings.TrimSpace(in.VehicleType)
	in.VehicleNumber = strings.TrimSpace(in.VehicleNumber)
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.Status = strings.TrimSpace(in.Status)

	if in.VehicleNumber == "" || in.VehicleType == "" || in.Make == "" || in.Model == "" {
		respondError(c, http.StatusBadRequest, "validation_error",
			"vehicle_number, vehicle_type, make and model are required", nil)
		return false
	}
	if in.Year < 1990 || in.Year > time.Now().Year()+1 {
		respondError(c, http.StatusBadRequest, "validation_error", "year is out of range", nil)
		return false
	}
	if in.Status == "" {
		in.Status = string(domain.VehicleAvailable)
	}
	if !domain.VehicleStatus(in.Status).Valid() {
		respondError(c, http.StatusBadRequest, "validation_error", "unknown vehicle status "+in.Status, nil)
		return false
	}
	return true
}

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	repo := repositories.VehicleRepository{}
	vehicles, err := repo.List(repositories.VehicleFilter{
		Statuses: QueryList(c, "status"),
		Types:    QueryList(c, "type"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.VehicleRepository{}
	vehicle, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// GET /api/vehicles/available
func GetAvailableVehicles(c *gin.Context) {
	svc := newTripService(c)
	vehicles, err := svc.ListAvailableVehicles()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/vehicle-types
func GetVehicleTypes(c *gin.Context) {
	repo := repositories.VehicleRepository{}
	types, err := repo.ListTypes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var in vehicleInput
	if !BindJSONOrError(c, &in) || !in.validate(c) {
		return
	}

	repo := repositories.VehicleRepository{}
	id, err := repo.Create(models.Vehicle{
		DriverID:      in.DriverID,
		VehicleType:   in.VehicleType,
		VehicleNumber: in.VehicleNumber,
		Make:          in.Make,
		Model:         in.Model,
		Year:          in.Year,
		Status:        in.Status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in vehicleInput
	if !BindJSONOrError(c, &in) || !in.validate(c) {
		return
	}

	repo := repositories.VehicleRepository{}
	if err := repo.Update(id, models.Vehicle{
		DriverID:      in.DriverID,
		VehicleType:   in.VehicleType,
		VehicleNumber: in.VehicleNumber,
		Make:          in.Make,
		Model:         in.Model,
		Year:          in.Year,
		Status:        in.Status,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.VehicleRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
