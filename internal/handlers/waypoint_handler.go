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

type WaypointHandler struct {
	waypointService *services.WaypointService
}

func NewWaypointHandler(waypointService *services.WaypointService) *WaypointHandler {
	return &WaypointHandler{
		waypointService: waypointService,
	}
}

func (wh *WaypointHandler) RegisterRoutes(router *gin.Engine) {
	waypointGroup := router.Group("/api/waypoints")

	waypointGroup.POST("/mission/:missionId", wh.AddWaypoint)
	waypointGroup.GET("/mission/:missionId", wh.GetWaypointsByMission)
	waypointGroup.PUT("/:id", wh.UpdateWaypoint)
	waypointGroup.DELETE("/:id", wh.DeleteWaypoint)
}

func (wh *WaypointHandler) AddWaypoint(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("missionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	var req models.CreateWaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	waypoint, err := wh.waypointService.AddWaypoint(c.Request.Context(), missionID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("CREATION_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(waypoint))
}

func (wh *WaypointHandler) GetWaypointsByMission(c *gin.Context) {
	missionID, err := uuid.Parse(c.Param("missionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	waypoints, err := wh.waypointService.GetWaypointsByMission(c.Request.Context(), missionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(waypoints))
}

func (wh *WaypointHandler) UpdateWaypoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	var req models.UpdateWaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	waypoint, err := wh.waypointService.UpdateWaypoint(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(waypoint))
}

func (wh *WaypointHandler) DeleteWaypoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	if err := wh.waypointService.DeleteWaypoint(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("DELETE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateMessageResponse("Waypoint deleted successfully"))
}
