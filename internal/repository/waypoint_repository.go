package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type WaypointRepository struct {
	db *sqlx.DB
}

func NewWaypointRepository(db *sqlx.DB) *WaypointRepository {
	return &WaypointRepository{db: db}
}

func (r *WaypointRepository) Create(ctx context.Context, waypoint *models.Waypoint) error {
	if waypoint.ID == uuid.Nil {
		waypoint.ID = uuid.New()
	}
	if waypoint.Status == "" {
		waypoint.Status = models.WaypointPending
	}
	waypoint.CreatedAt = time.Now()

	query := `
		INSERT INTO waypoints (
			id, mission_id, latitude, longitude, altitude, direction, sensors, frequency, status, created_at
		) VALUES (
			:id, :mission_id, :latitude, :longitude, :altitude, :direction, :sensors, :frequency, :status, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, waypoint)
	if err != nil {
		return fmt.Errorf("failed to create waypoint: %w", err)
	}

	return nil
}

func (r *WaypointRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Waypoint, error) {
	var waypoint models.Waypoint
	query := `SELECT * FROM waypoints WHERE id = $1`

	err := r.db.GetContext(ctx, &waypoint, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("waypoint %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get waypoint: %w", err)
	}

	return &waypoint, nil
}

// GetByMissionID returns the mission's waypoints in insertion order. No
// sequence index is stored, creation order is the display order.
func (r *WaypointRepository) GetByMissionID(ctx context.Context, missionID uuid.UUID) ([]models.Waypoint, error) {
	var waypoints []models.Waypoint
	query := `SELECT * FROM waypoints WHERE mission_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &waypoints, query, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get waypoints: %w", err)
	}

	return waypoints, nil
}

// UpdatePartial updates only the provided fields of a waypoint.
func (r *WaypointRepository) UpdatePartial(ctx context.Context, id uuid.UUID, req *models.UpdateWaypointRequest) error {
	updateFields := []string{}
	args := map[string]interface{}{
		"id": id,
	}

	if req.Latitude != nil {
		updateFields = append(updateFields, "latitude = :latitude")
		args["latitude"] = req.Latitude
	}
	if req.Longitude != nil {
		updateFields = append(updateFields, "longitude = :longitude")
		args["longitude"] = req.Longitude
	}
	if req.Altitude != nil {
		updateFields = append(updateFields, "altitude = :altitude")
		args["altitude"] = req.Altitude
	}
	if req.Direction != nil {
		updateFields = append(updateFields, "direction = :direction")
		args["direction"] = req.Direction
	}
	if req.Sensors != nil {
		updateFields = append(updateFields, "sensors = :sensors")
		args["sensors"] = req.Sensors
	}
	if req.Frequency != nil {
		updateFields = append(updateFields, "frequency = :frequency")
		args["frequency"] = req.Frequency
	}
	if req.Status != nil {
		updateFields = append(updateFields, "status = :status")
		args["status"] = req.Status
	}

	if len(updateFields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(`UPDATE waypoints SET %s WHERE id = :id`, strings.Join(updateFields, ", "))

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update waypoint: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("waypoint %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *WaypointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := utils.ExecWithCheck(ctx, r.db, `DELETE FROM waypoints WHERE id = $1`, utils.ExecDelete, id)
	if errors.Is(err, utils.ErrNoRowsAffected) {
		return fmt.Errorf("waypoint %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete waypoint: %w", err)
	}

	return nil
}
