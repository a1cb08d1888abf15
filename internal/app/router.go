// internal/app/router.go
package app

import (
	vehicleHandler "fleet-service/internal/handlers/vehicle"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	VehicleHandler *vehicleHandler.VehicleHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehicles")
	{
		vehicles.POST("", h.VehicleHandler.CreateVehicle)
		vehicles.GET("", h.VehicleHandler.ListVehicles)
		vehicles.GET("/:id", h.VehicleHandler.GetVehicle)
		vehicles.PUT("/:id", h.VehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", h.VehicleHandler.DeleteVehicle)
	}
}
