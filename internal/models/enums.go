package models

type DroneStatus string

const (
	DroneIdle        DroneStatus = "IDLE"
	DroneInMission   DroneStatus = "IN_MISSION"
	DroneCharging    DroneStatus = "CHARGING"
	DroneMaintenance DroneStatus = "MAINTENANCE"
)

type MissionStatus string

const (
	MissionPlanned    MissionStatus = "PLANNED"
	MissionInProgress MissionStatus = "IN_PROGRESS"
	MissionCompleted  MissionStatus = "COMPLETED"
	MissionAborted    MissionStatus = "ABORTED"
)

type WaypointStatus string

const (
	WaypointPending   WaypointStatus = "PENDING"
	WaypointCompleted WaypointStatus = "COMPLETED"
	WaypointSkipped   WaypointStatus = "SKIPPED"
)

func (s DroneStatus) IsValid() bool {
	switch s {
	case DroneIdle, DroneInMission, DroneCharging, DroneMaintenance:
		return true
	}
	return false
}

func (s MissionStatus) IsValid() bool {
	switch s {
	case MissionPlanned, MissionInProgress, MissionCompleted, MissionAborted:
		return true
	}
	return false
}

func (s WaypointStatus) IsValid() bool {
	switch s {
	case WaypointPending, WaypointCompleted, WaypointSkipped:
		return true
	}
	return false
}
