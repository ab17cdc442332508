package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeMissionStore is an in-memory MissionStore recording every status write.
type fakeMissionStore struct {
	missions  map[uuid.UUID]*models.Mission
	statusLog []models.MissionStatus
}

func newFakeMissionStore(missions ...*models.Mission) *fakeMissionStore {
	store := &fakeMissionStore{missions: map[uuid.UUID]*models.Mission{}}
	for _, m := range missions {
		store.missions[m.ID] = m
	}
	return store
}

func (f *fakeMissionStore) Create(_ context.Context, mission *models.Mission) error {
	if mission.ID == uuid.Nil {
		mission.ID = uuid.New()
	}
	f.missions[mission.ID] = mission
	return nil
}

func (f *fakeMissionStore) GetByID(_ context.Context, id uuid.UUID) (*models.Mission, error) {
	mission, ok := f.missions[id]
	if !ok {
		return nil, fmt.Errorf("mission %s: %w", id, repository.ErrNotFound)
	}
	copied := *mission
	return &copied, nil
}

func (f *fakeMissionStore) GetAll(_ context.Context) ([]models.Mission, error) {
	all := make([]models.Mission, 0, len(f.missions))
	for _, m := range f.missions {
		all = append(all, *m)
	}
	return all, nil
}

func (f *fakeMissionStore) UpdatePartial(_ context.Context, id uuid.UUID, req *models.UpdateMissionRequest) error {
	mission, ok := f.missions[id]
	if !ok {
		return fmt.Errorf("mission %s: %w", id, repository.ErrNotFound)
	}
	if req.Name != nil {
		mission.Name = *req.Name
	}
	if req.Status != nil {
		mission.Status = *req.Status
		f.statusLog = append(f.statusLog, *req.Status)
	}
	return nil
}

func (f *fakeMissionStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.MissionStatus) error {
	mission, ok := f.missions[id]
	if !ok {
		return fmt.Errorf("mission %s: %w", id, repository.ErrNotFound)
	}
	mission.Status = status
	f.statusLog = append(f.statusLog, status)
	return nil
}

func (f *fakeMissionStore) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := f.missions[id]; !ok {
		return fmt.Errorf("mission %s: %w", id, repository.ErrNotFound)
	}
	delete(f.missions, id)
	return nil
}

func plannedMission() *models.Mission {
	return &models.Mission{
		ID:     uuid.New(),
		Name:   "Survey run",
		Status: models.MissionPlanned,
	}
}

// ============================================================================
// LIFECYCLE OPERATIONS
// ============================================================================

func TestPauseResumeAbortEndsAborted(t *testing.T) {
	mission := plannedMission()
	store := newFakeMissionStore(mission)
	svc := NewMissionService(store, nil, nil, nil)
	ctx := context.Background()

	paused, err := svc.Pause(ctx, mission.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MissionPlanned, paused.Status)

	resumed, err := svc.Resume(ctx, mission.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MissionInProgress, resumed.Status)

	aborted, err := svc.Abort(ctx, mission.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MissionAborted, aborted.Status)

	// The persisted record, not just the returned view, ends ABORTED.
	assert.Equal(t, models.MissionAborted, store.missions[mission.ID].Status)
	assert.Equal(t, []models.MissionStatus{
		models.MissionPlanned,
		models.MissionInProgress,
		models.MissionAborted,
	}, store.statusLog)
}

func TestAbortForcesTerminalOverride(t *testing.T) {
	mission := plannedMission()
	mission.Status = models.MissionCompleted
	store := newFakeMissionStore(mission)
	svc := NewMissionService(store, nil, nil, nil)

	// COMPLETED is terminal in the nominal graph, but abort is an operator
	// override and still lands.
	aborted, err := svc.Abort(context.Background(), mission.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MissionAborted, aborted.Status)
	assert.Equal(t, models.MissionAborted, store.missions[mission.ID].Status)
}

func TestLifecycleOpsOnMissingMission(t *testing.T) {
	store := newFakeMissionStore()
	svc := NewMissionService(store, nil, nil, nil)
	ctx := context.Background()
	id := uuid.New()

	_, err := svc.Pause(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Resume(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Abort(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.DeleteMission(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Empty(t, store.statusLog, "no status writes for a missing mission")
}

func TestDeleteMissionRemovesRecord(t *testing.T) {
	mission := plannedMission()
	store := newFakeMissionStore(mission)
	svc := NewMissionService(store, nil, nil, nil)

	assert.NoError(t, svc.DeleteMission(context.Background(), mission.ID))

	_, err := svc.GetMissionByID(context.Background(), mission.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// ============================================================================
// TRANSITION GRAPH
// ============================================================================

func TestIsAllowedTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    models.MissionStatus
		to      models.MissionStatus
		allowed bool
	}{
		{"start", models.MissionPlanned, models.MissionInProgress, true},
		{"scrub before takeoff", models.MissionPlanned, models.MissionAborted, true},
		{"pause", models.MissionInProgress, models.MissionPlanned, true},
		{"finish", models.MissionInProgress, models.MissionCompleted, true},
		{"abort in flight", models.MissionInProgress, models.MissionAborted, true},
		{"skip straight to completed", models.MissionPlanned, models.MissionCompleted, false},
		{"reopen completed", models.MissionCompleted, models.MissionInProgress, false},
		{"reopen aborted", models.MissionAborted, models.MissionPlanned, false},
		{"abort after completion", models.MissionCompleted, models.MissionAborted, false},
		{"same state planned", models.MissionPlanned, models.MissionPlanned, true},
		{"same state completed", models.MissionCompleted, models.MissionCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, isAllowedTransition(tc.from, tc.to))
		})
	}
}

// ============================================================================
// BATTERY CLAMPING
// ============================================================================

func TestClampBattery(t *testing.T) {
	assert.Equal(t, 0, clampBattery(-5))
	assert.Equal(t, 0, clampBattery(0))
	assert.Equal(t, 42, clampBattery(42))
	assert.Equal(t, 100, clampBattery(100))
	assert.Equal(t, 100, clampBattery(250))
}
