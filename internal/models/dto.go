package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// DRONE REQUESTS
// ============================================================================

type CreateDroneRequest struct {
	Name         string      `json:"name" binding:"required"`
	Status       DroneStatus `json:"status"`
	BatteryLevel int         `json:"battery_level"`
	Location     string      `json:"location"`
}

func (r *CreateDroneRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return fmt.Errorf("invalid drone status: %s", r.Status)
	}
	return nil
}

type UpdateDroneRequest struct {
	Name         *string      `json:"name"`
	Status       *DroneStatus `json:"status"`
	BatteryLevel *int         `json:"battery_level"`
	Location     *string      `json:"location"`
}

func (r *UpdateDroneRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fmt.Errorf("invalid drone status: %s", *r.Status)
	}
	return nil
}

// ============================================================================
// MISSION REQUESTS
// ============================================================================

type CreateMissionRequest struct {
	Name       string             `json:"name" binding:"required"`
	Area       *GeoJSONPolygon    `json:"area"`
	FlightPath *GeoJSONLineString `json:"flight_path"`
	Status     MissionStatus      `json:"status"`
	StartTime  *time.Time         `json:"start_time"`
	EndTime    *time.Time         `json:"end_time"`
	DroneID    *uuid.UUID         `json:"drone_id"`
}

func (r *CreateMissionRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return fmt.Errorf("invalid mission status: %s", r.Status)
	}
	return nil
}

// UpdateMissionRequest merges the provided fields into the mission. Status is
// a free-form overwrite: all four values are reachable here, this is the
// operator override path next to pause/resume/abort.
type UpdateMissionRequest struct {
	Name       *string            `json:"name"`
	Area       *GeoJSONPolygon    `json:"area"`
	FlightPath *GeoJSONLineString `json:"flight_path"`
	Status     *MissionStatus     `json:"status"`
	StartTime  *time.Time         `json:"start_time"`
	EndTime    *time.Time         `json:"end_time"`
	DroneID    *uuid.UUID         `json:"drone_id"`
}

func (r *UpdateMissionRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fmt.Errorf("invalid mission status: %s", *r.Status)
	}
	return nil
}

// ============================================================================
// WAYPOINT REQUESTS
// ============================================================================

type CreateWaypointRequest struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Altitude  float64        `json:"altitude"`
	Direction float64        `json:"direction"`
	Sensors   string         `json:"sensors"`
	Frequency float64        `json:"frequency"`
	Status    WaypointStatus `json:"status"`
}

func (r *CreateWaypointRequest) Validate() error {
	if r.Direction < 0 || r.Direction > 360 {
		return fmt.Errorf("direction must be within [0, 360] degrees")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return fmt.Errorf("invalid waypoint status: %s", r.Status)
	}
	return nil
}

type UpdateWaypointRequest struct {
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	Altitude  *float64        `json:"altitude"`
	Direction *float64        `json:"direction"`
	Sensors   *string         `json:"sensors"`
	Frequency *float64        `json:"frequency"`
	Status    *WaypointStatus `json:"status"`
}

func (r *UpdateWaypointRequest) Validate() error {
	if r.Direction != nil && (*r.Direction < 0 || *r.Direction > 360) {
		return fmt.Errorf("direction must be within [0, 360] degrees")
	}
	if r.Status != nil && !r.Status.IsValid() {
		return fmt.Errorf("invalid waypoint status: %s", *r.Status)
	}
	return nil
}

// ============================================================================
// TELEMETRY REQUESTS
// ============================================================================

type CreateTelemetryRequest struct {
	MissionID *uuid.UUID `json:"mission_id"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Altitude  float64    `json:"altitude"`
	Battery   int        `json:"battery"`
	Status    string     `json:"status"`
}
