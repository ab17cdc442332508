package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MissionRepository struct {
	db *sqlx.DB
}

func NewMissionRepository(db *sqlx.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// missionColumns wraps the geometry columns with ST_AsEWKB so the
// GeoJSON Scan implementations receive binary EWKB instead of hex text.
const missionColumns = `
	id, name,
	ST_AsEWKB(area) AS area,
	ST_AsEWKB(flight_path) AS flight_path,
	status, start_time, end_time, drone_id, created_at, updated_at`

func (r *MissionRepository) Create(ctx context.Context, mission *models.Mission) error {
	if mission.ID == uuid.Nil {
		mission.ID = uuid.New()
	}
	if mission.Status == "" {
		mission.Status = models.MissionPlanned
	}
	mission.CreatedAt = time.Now()
	mission.UpdatedAt = time.Now()

	query := `
		INSERT INTO missions (
			id, name, area, flight_path, status, start_time, end_time, drone_id, created_at, updated_at
		) VALUES (
			:id, :name, ST_GeomFromEWKT(:area), ST_GeomFromEWKT(:flight_path),
			:status, :start_time, :end_time, :drone_id, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, mission)
	if err != nil {
		return fmt.Errorf("failed to create mission: %w", err)
	}

	return nil
}

func (r *MissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	var mission models.Mission
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`

	err := r.db.GetContext(ctx, &mission, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	return &mission, nil
}

func (r *MissionRepository) GetAll(ctx context.Context) ([]models.Mission, error) {
	var missions []models.Mission
	query := `SELECT ` + missionColumns + ` FROM missions ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &missions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get missions: %w", err)
	}

	return missions, nil
}

func (r *MissionRepository) GetByStatus(ctx context.Context, status models.MissionStatus) ([]models.Mission, error) {
	var missions []models.Mission
	query := `SELECT ` + missionColumns + ` FROM missions WHERE status = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &missions, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get missions by status: %w", err)
	}

	return missions, nil
}

// GetAllInRange returns missions whose start_time falls inside the optional
// window. Nil bounds are ignored, so a zero-value range is GetAll.
func (r *MissionRepository) GetAllInRange(ctx context.Context, rng models.ReportRange) ([]models.Mission, error) {
	where := []string{}
	args := []interface{}{}

	if rng.From != nil {
		args = append(args, *rng.From)
		where = append(where, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if rng.To != nil {
		args = append(args, *rng.To)
		where = append(where, fmt.Sprintf("start_time <= $%d", len(args)))
	}

	query := `SELECT ` + missionColumns + ` FROM missions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var missions []models.Mission
	err := r.db.SelectContext(ctx, &missions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get missions in range: %w", err)
	}

	return missions, nil
}

// UpdatePartial updates only the provided fields of a mission.
func (r *MissionRepository) UpdatePartial(ctx context.Context, id uuid.UUID, req *models.UpdateMissionRequest) error {
	updateFields := []string{}
	args := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	if req.Name != nil {
		updateFields = append(updateFields, "name = :name")
		args["name"] = req.Name
	}
	if req.Area != nil {
		updateFields = append(updateFields, "area = ST_GeomFromEWKT(:area)")
		args["area"] = req.Area
	}
	if req.FlightPath != nil {
		updateFields = append(updateFields, "flight_path = ST_GeomFromEWKT(:flight_path)")
		args["flight_path"] = req.FlightPath
	}
	if req.Status != nil {
		updateFields = append(updateFields, "status = :status")
		args["status"] = req.Status
	}
	if req.StartTime != nil {
		updateFields = append(updateFields, "start_time = :start_time")
		args["start_time"] = req.StartTime
	}
	if req.EndTime != nil {
		updateFields = append(updateFields, "end_time = :end_time")
		args["end_time"] = req.EndTime
	}
	if req.DroneID != nil {
		updateFields = append(updateFields, "drone_id = :drone_id")
		args["drone_id"] = req.DroneID
	}

	updateFields = append(updateFields, "updated_at = :updated_at")

	query := fmt.Sprintf(`UPDATE missions SET %s WHERE id = :id`, strings.Join(updateFields, ", "))

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("mission %s: %w", id, ErrNotFound)
	}

	return nil
}

// UpdateStatus force-sets the mission status. No transition precondition here:
// pause/resume/abort are operator overrides and must work from any state.
func (r *MissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.MissionStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE missions SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update mission status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("mission %s: %w", id, ErrNotFound)
	}

	return nil
}

// DeleteCascade removes a mission together with its waypoints and telemetry in
// one transaction. Either everything goes or nothing does: a missing mission
// rolls the dependent deletes back and reports ErrNotFound.
func (r *MissionRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM telemetry WHERE mission_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete mission telemetry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM waypoints WHERE mission_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete mission waypoints: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM missions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("mission %s: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cascade delete: %w", err)
	}

	return nil
}
