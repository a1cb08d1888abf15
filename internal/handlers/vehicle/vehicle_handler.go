// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"
	"strconv"

	"fleet-service/internal/domain/vehicle"
	xerrors "fleet-service/internal/pkg/errors"
	"fleet-service/internal/pkg/response"
	service "fleet-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// CreateVehicle registers a new vehicle
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []vehicle.Violation{{Field: "", Message: err.Error()}})
		return
	}

	if violations := vehicle.ValidateCreate(&req); len(violations) > 0 {
		response.ValidationError(c, violations)
		return
	}

	result, err := h.vehicleService.CreateVehicle(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetVehicle retrieves a vehicle by ID
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	result, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListVehicles retrieves vehicles with skip/limit pagination
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	skip := parseListParam(c.Query("skip"), 0)
	if skip < 0 {
		skip = 0
	}
	limit := parseListParam(c.Query("limit"), defaultListLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	result, err := h.vehicleService.ListVehicles(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateVehicle applies a partial update to a vehicle
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, []vehicle.Violation{{Field: "", Message: err.Error()}})
		return
	}

	if violations := vehicle.ValidateUpdate(&req); len(violations) > 0 {
		response.ValidationError(c, violations)
		return
	}

	result, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteVehicle removes a vehicle
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError translates the domain error taxonomy to the HTTP error
// envelope: Conflict -> 400, NotFound -> 404, anything else -> 500.
func (h *VehicleHandler) respondError(c *gin.Context, err error) {
	if conflict, ok := xerrors.AsConflict(err); ok {
		response.Error(c, http.StatusBadRequest, conflict.Error())
		return
	}
	if xerrors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c, "vehicle not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "internal server error")
}

func parseListParam(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
