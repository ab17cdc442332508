package handlers

import (
	"context"
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

type MissionHandler struct {
	missionService    *services.MissionService
	monitoringService *services.MonitoringService
}

func NewMissionHandler(missionService *services.MissionService, monitoringService *services.MonitoringService) *MissionHandler {
	return &MissionHandler{
		missionService:    missionService,
		monitoringService: monitoringService,
	}
}

func (mh *MissionHandler) RegisterRoutes(router *gin.Engine) {
	missionGroup := router.Group("/api/missions")

	missionGroup.POST("", mh.CreateMission)
	missionGroup.GET("", mh.GetAllMissions)
	// Registered before /:id so "active" is never parsed as a mission id.
	missionGroup.GET("/active", mh.GetActiveMissions)
	missionGroup.GET("/:id", mh.GetMissionByID)
	missionGroup.PUT("/:id", mh.UpdateMission)
	missionGroup.DELETE("/:id", mh.DeleteMission)
	missionGroup.POST("/:id/pause", mh.PauseMission)
	missionGroup.POST("/:id/resume", mh.ResumeMission)
	missionGroup.POST("/:id/abort", mh.AbortMission)
}

func (mh *MissionHandler) CreateMission(c *gin.Context) {
	var req models.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	mission, err := mh.missionService.CreateMission(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("CREATION_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(mission))
}

func (mh *MissionHandler) GetAllMissions(c *gin.Context) {
	missions, err := mh.missionService.GetAllMissions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(missions))
}

// GetActiveMissions serves the monitoring feed: every IN_PROGRESS mission with
// its drone, waypoints and telemetry history.
func (mh *MissionHandler) GetActiveMissions(c *gin.Context) {
	views, err := mh.monitoringService.ActiveMissions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(views))
}

func (mh *MissionHandler) GetMissionByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	mission, err := mh.missionService.GetMissionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("FETCH_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(mission))
}

func (mh *MissionHandler) UpdateMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	var req models.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request", "error", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
		return
	}

	mission, err := mh.missionService.UpdateMission(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(mission))
}

func (mh *MissionHandler) DeleteMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	if err := mh.missionService.DeleteMission(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("DELETE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateMessageResponse("Mission and associated waypoints deleted successfully"))
}

func (mh *MissionHandler) PauseMission(c *gin.Context) {
	mh.setStatus(c, mh.missionService.Pause)
}

func (mh *MissionHandler) ResumeMission(c *gin.Context) {
	mh.setStatus(c, mh.missionService.Resume)
}

func (mh *MissionHandler) AbortMission(c *gin.Context) {
	mh.setStatus(c, mh.missionService.Abort)
}

func (mh *MissionHandler) setStatus(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*models.Mission, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ID", "Invalid UUID format"))
		return
	}

	mission, err := op(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("UPDATE_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(mission))
}
