package event

const MissionQueue string = "mission_events"

type MissionEvent struct {
	ID         string           `json:"id"`
	EventType  MissionEventType `json:"event_type"`
	MissionID  string           `json:"mission_id"`
	Status     string           `json:"status,omitempty"`
	Additional map[string]any   `json:"additional,omitempty"`
}

type MissionEventType string

const (
	MissionCreated       MissionEventType = "created"
	MissionUpdated       MissionEventType = "updated"
	MissionStatusChanged MissionEventType = "status_changed"
	MissionDeleted       MissionEventType = "deleted"
)
