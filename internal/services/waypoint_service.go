package services

import (
	"context"
	"fmt"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"

	"github.com/google/uuid"
)

type WaypointService struct {
	waypointRepo *repository.WaypointRepository
	missionRepo  *repository.MissionRepository
}

func NewWaypointService(waypointRepo *repository.WaypointRepository, missionRepo *repository.MissionRepository) *WaypointService {
	return &WaypointService{
		waypointRepo: waypointRepo,
		missionRepo:  missionRepo,
	}
}

// AddWaypoint appends a waypoint to a mission's flight plan. The mission must
// exist; a waypoint without a mission is a constraint violation.
func (s *WaypointService) AddWaypoint(ctx context.Context, missionID uuid.UUID, req models.CreateWaypointRequest) (*models.Waypoint, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if _, err := s.missionRepo.GetByID(ctx, missionID); err != nil {
		return nil, fmt.Errorf("mission %s does not exist", missionID)
	}

	waypoint := &models.Waypoint{
		MissionID: missionID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Altitude:  req.Altitude,
		Direction: req.Direction,
		Sensors:   req.Sensors,
		Frequency: req.Frequency,
		Status:    req.Status,
	}

	if err := s.waypointRepo.Create(ctx, waypoint); err != nil {
		return nil, fmt.Errorf("failed to create waypoint: %w", err)
	}

	return waypoint, nil
}

func (s *WaypointService) GetWaypointsByMission(ctx context.Context, missionID uuid.UUID) ([]models.Waypoint, error) {
	waypoints, err := s.waypointRepo.GetByMissionID(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get waypoints: %w", err)
	}

	return waypoints, nil
}

func (s *WaypointService) UpdateWaypoint(ctx context.Context, id uuid.UUID, req models.UpdateWaypointRequest) (*models.Waypoint, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.waypointRepo.UpdatePartial(ctx, id, &req); err != nil {
		return nil, err
	}

	return s.waypointRepo.GetByID(ctx, id)
}

func (s *WaypointService) DeleteWaypoint(ctx context.Context, id uuid.UUID) error {
	return s.waypointRepo.Delete(ctx, id)
}
