package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vivekadapa/Drone-Management-System/internal/event"
	"github.com/vivekadapa/Drone-Management-System/internal/models"

	"github.com/google/uuid"
)

// allowedTransitions is the nominal mission state machine:
// PLANNED -> IN_PROGRESS (start/resume), IN_PROGRESS -> PLANNED (pause),
// IN_PROGRESS -> {COMPLETED, ABORTED}, and PLANNED -> ABORTED (scrub).
// Pause/resume/abort do NOT enforce it: an operator may force-abort a stuck
// mission whatever the recorded state says. Out-of-graph moves are logged.
var allowedTransitions = map[models.MissionStatus][]models.MissionStatus{
	models.MissionPlanned:    {models.MissionInProgress, models.MissionAborted},
	models.MissionInProgress: {models.MissionPlanned, models.MissionCompleted, models.MissionAborted},
	models.MissionCompleted:  {},
	models.MissionAborted:    {},
}

func isAllowedTransition(from, to models.MissionStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MissionStore is the persistence surface the lifecycle manager drives.
// *repository.MissionRepository is the production implementation.
type MissionStore interface {
	Create(ctx context.Context, mission *models.Mission) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	GetAll(ctx context.Context) ([]models.Mission, error)
	UpdatePartial(ctx context.Context, id uuid.UUID, req *models.UpdateMissionRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.MissionStatus) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// DroneStore is the subset of the drone repository used for existence checks.
type DroneStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Drone, error)
}

type MissionService struct {
	missionRepo MissionStore
	droneRepo   DroneStore
	publisher   *event.MissionPublisher
	reportCache *ReportCache
}

// NewMissionService wires the lifecycle manager. publisher and reportCache
// may be nil; the service runs without a broker or cache.
func NewMissionService(missionRepo MissionStore, droneRepo DroneStore, publisher *event.MissionPublisher, reportCache *ReportCache) *MissionService {
	return &MissionService{
		missionRepo: missionRepo,
		droneRepo:   droneRepo,
		publisher:   publisher,
		reportCache: reportCache,
	}
}

func (s *MissionService) CreateMission(ctx context.Context, req models.CreateMissionRequest) (*models.Mission, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if req.DroneID != nil {
		if _, err := s.droneRepo.GetByID(ctx, *req.DroneID); err != nil {
			return nil, fmt.Errorf("drone %s does not exist", *req.DroneID)
		}
	}

	status := req.Status
	if status == "" {
		status = models.MissionPlanned
	}

	mission := &models.Mission{
		Name:       req.Name,
		Area:       req.Area,
		FlightPath: req.FlightPath,
		Status:     status,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		DroneID:    req.DroneID,
	}

	if err := s.missionRepo.Create(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	s.invalidateReports(ctx)
	s.publish(ctx, event.MissionCreated, mission.ID, mission.Status)

	return mission, nil
}

func (s *MissionService) GetMissionByID(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	return s.missionRepo.GetByID(ctx, id)
}

func (s *MissionService) GetAllMissions(ctx context.Context) ([]models.Mission, error) {
	missions, err := s.missionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get missions: %w", err)
	}

	return missions, nil
}

// UpdateMission merges the provided fields. A status carried here is a direct
// overwrite, the only path where all four values are reachable as input.
func (s *MissionService) UpdateMission(ctx context.Context, id uuid.UUID, req models.UpdateMissionRequest) (*models.Mission, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	current, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DroneID != nil {
		if _, err := s.droneRepo.GetByID(ctx, *req.DroneID); err != nil {
			return nil, fmt.Errorf("drone %s does not exist", *req.DroneID)
		}
	}

	if req.Status != nil && !isAllowedTransition(current.Status, *req.Status) {
		slog.Warn("mission status overridden outside the nominal transition set",
			"mission_id", id, "from", current.Status, "to", *req.Status)
	}

	if err := s.missionRepo.UpdatePartial(ctx, id, &req); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	s.publish(ctx, event.MissionUpdated, id, "")

	return s.missionRepo.GetByID(ctx, id)
}

// Pause forces the mission back to PLANNED. Unconditional on purpose.
func (s *MissionService) Pause(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	return s.setStatus(ctx, id, models.MissionPlanned)
}

// Resume forces the mission to IN_PROGRESS. Also the start transition; the
// two are not distinguished.
func (s *MissionService) Resume(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	return s.setStatus(ctx, id, models.MissionInProgress)
}

// Abort forces ABORTED from any prior state, terminal states included.
func (s *MissionService) Abort(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	return s.setStatus(ctx, id, models.MissionAborted)
}

func (s *MissionService) setStatus(ctx context.Context, id uuid.UUID, status models.MissionStatus) (*models.Mission, error) {
	current, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAllowedTransition(current.Status, status) {
		slog.Warn("mission status forced outside the nominal transition set",
			"mission_id", id, "from", current.Status, "to", status)
	}

	if err := s.missionRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	s.publish(ctx, event.MissionStatusChanged, id, status)

	return s.missionRepo.GetByID(ctx, id)
}

// DeleteMission removes the mission and everything hanging off it (waypoints,
// telemetry) in one transaction owned by the repository.
func (s *MissionService) DeleteMission(ctx context.Context, id uuid.UUID) error {
	if err := s.missionRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	s.publish(ctx, event.MissionDeleted, id, "")

	return nil
}

func (s *MissionService) publish(ctx context.Context, eventType event.MissionEventType, missionID uuid.UUID, status models.MissionStatus) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishEvent(ctx, event.MissionEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		MissionID: missionID.String(),
		Status:    string(status),
	})
	if err != nil {
		slog.Error("failed to publish mission event", "event_type", eventType, "mission_id", missionID, "error", err)
	}
}

func (s *MissionService) invalidateReports(ctx context.Context) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.Invalidate(ctx); err != nil {
		slog.Error("failed to invalidate report cache", "error", err)
	}
}
