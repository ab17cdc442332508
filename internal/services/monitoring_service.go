package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"
)

// MonitoringService assembles the live monitoring feed. Pure read-side
// projection: no writes, every call recomputes from current stored state, so
// overlapping polls are independent and idempotent.
type MonitoringService struct {
	missionRepo   *repository.MissionRepository
	droneRepo     *repository.DroneRepository
	waypointRepo  *repository.WaypointRepository
	telemetryRepo *repository.TelemetryRepository
}

func NewMonitoringService(
	missionRepo *repository.MissionRepository,
	droneRepo *repository.DroneRepository,
	waypointRepo *repository.WaypointRepository,
	telemetryRepo *repository.TelemetryRepository,
) *MonitoringService {
	return &MonitoringService{
		missionRepo:   missionRepo,
		droneRepo:     droneRepo,
		waypointRepo:  waypointRepo,
		telemetryRepo: telemetryRepo,
	}
}

// ActiveMissions returns every IN_PROGRESS mission joined with its drone
// summary, waypoints in insertion order, and telemetry most-recent-first.
// PLANNED missions are pre-flight and stay out of this feed.
func (s *MonitoringService) ActiveMissions(ctx context.Context) ([]models.ActiveMissionView, error) {
	missions, err := s.missionRepo.GetByStatus(ctx, models.MissionInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to get active missions: %w", err)
	}

	views := make([]models.ActiveMissionView, 0, len(missions))
	for _, mission := range missions {
		waypoints, err := s.waypointRepo.GetByMissionID(ctx, mission.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get waypoints for mission %s: %w", mission.ID, err)
		}

		telemetry, err := s.telemetryRepo.GetByMissionID(ctx, mission.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get telemetry for mission %s: %w", mission.ID, err)
		}

		var drone *models.Drone
		if mission.DroneID != nil {
			drone, err = s.droneRepo.GetByID(ctx, *mission.DroneID)
			if err != nil {
				// A dangling drone reference should not break the whole feed.
				slog.Warn("active mission references unknown drone",
					"mission_id", mission.ID, "drone_id", *mission.DroneID, "error", err)
				drone = nil
			}
		}

		views = append(views, buildActiveMissionView(mission, drone, waypoints, telemetry))
	}

	return views, nil
}

func buildActiveMissionView(mission models.Mission, drone *models.Drone, waypoints []models.Waypoint, telemetry []models.Telemetry) models.ActiveMissionView {
	view := models.ActiveMissionView{
		ID:        mission.ID,
		Name:      mission.Name,
		Status:    mission.Status,
		StartTime: mission.StartTime,
		Waypoints: waypoints,
		Telemetry: telemetry,
	}

	if view.Waypoints == nil {
		view.Waypoints = []models.Waypoint{}
	}
	if view.Telemetry == nil {
		view.Telemetry = []models.Telemetry{}
	}

	if drone != nil {
		view.Drone = &models.DroneSummary{ID: drone.ID, Name: drone.Name}
	} else if mission.DroneID != nil {
		// Keep the id visible even when the full record is gone.
		view.Drone = &models.DroneSummary{ID: *mission.DroneID}
	}

	return view
}
