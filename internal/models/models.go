package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// FLEET
// ============================================================================

type Drone struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Status       DroneStatus `json:"status" db:"status"`
	BatteryLevel int         `json:"battery_level" db:"battery_level"`
	Location     string      `json:"location" db:"location"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// ============================================================================
// MISSIONS
// ============================================================================

type Mission struct {
	ID         uuid.UUID          `json:"id" db:"id"`
	Name       string             `json:"name" db:"name"`
	Area       *GeoJSONPolygon    `json:"area,omitempty" db:"area"`
	FlightPath *GeoJSONLineString `json:"flight_path,omitempty" db:"flight_path"`
	Status     MissionStatus      `json:"status" db:"status"`
	StartTime  *time.Time         `json:"start_time,omitempty" db:"start_time"`
	EndTime    *time.Time         `json:"end_time,omitempty" db:"end_time"`
	DroneID    *uuid.UUID         `json:"drone_id,omitempty" db:"drone_id"`
	CreatedAt  time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" db:"updated_at"`
}

// Duration returns the mission duration in minutes when both time bounds are
// set, nil otherwise. No rounding; display rounding is a presentation concern.
func (m *Mission) Duration() *float64 {
	if m.StartTime == nil || m.EndTime == nil {
		return nil
	}
	d := m.EndTime.Sub(*m.StartTime).Minutes()
	return &d
}

type Waypoint struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	MissionID uuid.UUID      `json:"mission_id" db:"mission_id"`
	Latitude  float64        `json:"latitude" db:"latitude"`
	Longitude float64        `json:"longitude" db:"longitude"`
	Altitude  float64        `json:"altitude" db:"altitude"`
	Direction float64        `json:"direction" db:"direction"`
	Sensors   string         `json:"sensors" db:"sensors"`
	Frequency float64        `json:"frequency" db:"frequency"`
	Status    WaypointStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

type Telemetry struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	DroneID   uuid.UUID  `json:"drone_id" db:"drone_id"`
	MissionID *uuid.UUID `json:"mission_id,omitempty" db:"mission_id"`
	Latitude  float64    `json:"latitude" db:"latitude"`
	Longitude float64    `json:"longitude" db:"longitude"`
	Altitude  float64    `json:"altitude" db:"altitude"`
	Battery   int        `json:"battery" db:"battery"`
	Status    string     `json:"status" db:"status"`
	Timestamp time.Time  `json:"timestamp" db:"timestamp"`
}

// ============================================================================
// MONITORING VIEW
// ============================================================================

// DroneSummary is the slim drone record carried by the monitoring feed.
type DroneSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ActiveMissionView is one entry of the live monitoring feed: an IN_PROGRESS
// mission joined with its drone, ordered waypoints and telemetry history.
type ActiveMissionView struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Status    MissionStatus `json:"status"`
	StartTime *time.Time    `json:"start_time,omitempty"`
	Drone     *DroneSummary `json:"drone,omitempty"`
	Waypoints []Waypoint    `json:"waypoints"`
	Telemetry []Telemetry   `json:"telemetry"`
}

// ============================================================================
// REPORTS
// ============================================================================

type OrganizationReport struct {
	TotalMissions      int     `json:"total_missions"`
	SuccessRate        float64 `json:"success_rate"`
	FailureRate        float64 `json:"failure_rate"`
	AvgMissionDuration float64 `json:"avg_mission_duration"`
}

type MissionReport struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Status     MissionStatus      `json:"status"`
	Duration   *float64           `json:"duration"`
	Area       *GeoJSONPolygon    `json:"area,omitempty"`
	FlightPath *GeoJSONLineString `json:"flight_path,omitempty"`
}

// ReportRange is the optional time window applied to the reporting queries.
// Missions are selected by start_time when either bound is present.
type ReportRange struct {
	From *time.Time
	To   *time.Time
}

func (r ReportRange) IsZero() bool {
	return r.From == nil && r.To == nil
}
