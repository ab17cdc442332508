package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"
	"github.com/vivekadapa/Drone-Management-System/internal/services"
	"github.com/vivekadapa/Drone-Management-System/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DroneHandler struct {
	droneService *services.DroneService
}

func NewDroneHandler(droneService *services.DroneService) *DroneHandler {
	return &DroneHandler{
		droneService: droneService,
	}
}

func (dh *DroneHandler) RegisterRoutes(router *gin.Engine) {
	droneGroup := router.Group("/api/drones")

	droneGroup.POST("", dh.CreateDrone)
	droneGroup.GET("", dh.GetAllDrones)
	droneGroup.GET("/:id", dh.GetDroneByID)
	droneGroup.PUT("/:id", dh.UpdateDrone)
	droneGroup.DELETE("/:id", dh.DeleteDrone)
}

func (dh *DroneHandler) CreateDrone(c *gin.Context) {
	var req models.CreateDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	drone, err := dh.droneService.CreateDrone(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("CREATION_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(drone))
}

func (dh *DroneHandler) GetAllDrones(c *gin.Context) {
	drones, err := dh.droneService.GetAllDrones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(drones))
}

func (dh *DroneHandler) GetDroneByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	drone, err := dh.droneService.GetDroneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(drone))
}

func (dh *DroneHandler) UpdateDrone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	var req models.UpdateDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	drone, err := dh.droneService.UpdateDrone(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(drone))
}

func (dh *DroneHandler) DeleteDrone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	if err := dh.droneService.DeleteDrone(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("DELETE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateMessageResponse("Drone deleted successfully"))
}
