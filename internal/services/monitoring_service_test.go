package services

import (
	"testing"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildActiveMissionView_WithDrone(t *testing.T) {
	droneID := uuid.New()
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	mission := models.Mission{
		ID:        uuid.New(),
		Name:      "Field survey north",
		Status:    models.MissionInProgress,
		StartTime: &start,
		DroneID:   &droneID,
	}
	drone := &models.Drone{ID: droneID, Name: "Falcon-1", Status: models.DroneInMission}

	waypoints := []models.Waypoint{
		{ID: uuid.New(), MissionID: mission.ID, Latitude: 1, Longitude: 1},
		{ID: uuid.New(), MissionID: mission.ID, Latitude: 2, Longitude: 2},
	}
	telemetry := []models.Telemetry{
		{ID: uuid.New(), DroneID: droneID, Battery: 80},
		{ID: uuid.New(), DroneID: droneID, Battery: 85},
	}

	view := buildActiveMissionView(mission, drone, waypoints, telemetry)

	assert.Equal(t, mission.ID, view.ID)
	assert.Equal(t, models.MissionInProgress, view.Status)
	if assert.NotNil(t, view.Drone) {
		assert.Equal(t, droneID, view.Drone.ID)
		assert.Equal(t, "Falcon-1", view.Drone.Name)
	}
	// Input ordering is preserved verbatim.
	assert.Equal(t, waypoints, view.Waypoints)
	assert.Equal(t, telemetry, view.Telemetry)
}

func TestBuildActiveMissionView_NoDroneAssigned(t *testing.T) {
	mission := models.Mission{
		ID:     uuid.New(),
		Name:   "Unassigned survey",
		Status: models.MissionInProgress,
	}

	view := buildActiveMissionView(mission, nil, nil, nil)

	assert.Nil(t, view.Drone)
	assert.NotNil(t, view.Waypoints, "waypoints must serialize as [], not null")
	assert.Empty(t, view.Waypoints)
	assert.NotNil(t, view.Telemetry, "telemetry must serialize as [], not null")
	assert.Empty(t, view.Telemetry)
}

func TestBuildActiveMissionView_DanglingDroneReference(t *testing.T) {
	droneID := uuid.New()
	mission := models.Mission{
		ID:      uuid.New(),
		Name:    "Orphaned survey",
		Status:  models.MissionInProgress,
		DroneID: &droneID,
	}

	view := buildActiveMissionView(mission, nil, nil, nil)

	// The full drone record is gone but the id stays visible.
	if assert.NotNil(t, view.Drone) {
		assert.Equal(t, droneID, view.Drone.ID)
		assert.Empty(t, view.Drone.Name)
	}
}
