package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/services"
	"github.com/vivekadapa/Drone-Management-System/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TelemetryHandler struct {
	telemetryService *services.TelemetryService
}

func NewTelemetryHandler(telemetryService *services.TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryService: telemetryService,
	}
}

func (th *TelemetryHandler) RegisterRoutes(router *gin.Engine) {
	telemetryGroup := router.Group("/api/telemetry")

	telemetryGroup.POST("/drone/:droneId", th.AddTelemetry)
	telemetryGroup.GET("/drone/:droneId", th.GetTelemetryByDrone)
}

func (th *TelemetryHandler) AddTelemetry(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	var req models.CreateTelemetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	telemetry, err := th.telemetryService.AddTelemetry(c.Request.Context(), droneID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("CREATION_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(telemetry))
}

func (th *TelemetryHandler) GetTelemetryByDrone(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	samples, err := th.telemetryService.GetTelemetryByDrone(c.Request.Context(), droneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(samples))
}
