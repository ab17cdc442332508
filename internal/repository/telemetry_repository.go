package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TelemetryRepository is append-only: samples are never updated and only go
// away through the mission delete cascade.
type TelemetryRepository struct {
	db *sqlx.DB
}

func NewTelemetryRepository(db *sqlx.DB) *TelemetryRepository {
	return &TelemetryRepository{db: db}
}

func (r *TelemetryRepository) Create(ctx context.Context, telemetry *models.Telemetry) error {
	if telemetry.ID == uuid.Nil {
		telemetry.ID = uuid.New()
	}
	telemetry.Timestamp = time.Now()

	query := `
		INSERT INTO telemetry (
			id, drone_id, mission_id, latitude, longitude, altitude, battery, status, timestamp
		) VALUES (
			:id, :drone_id, :mission_id, :latitude, :longitude, :altitude, :battery, :status, :timestamp
		)`

	_, err := r.db.NamedExecContext(ctx, query, telemetry)
	if err != nil {
		return fmt.Errorf("failed to create telemetry: %w", err)
	}

	return nil
}

// GetByDroneID returns a drone's samples, most recent first.
func (r *TelemetryRepository) GetByDroneID(ctx context.Context, droneID uuid.UUID) ([]models.Telemetry, error) {
	var samples []models.Telemetry
	query := `SELECT * FROM telemetry WHERE drone_id = $1 ORDER BY timestamp DESC`

	err := r.db.SelectContext(ctx, &samples, query, droneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get telemetry: %w", err)
	}

	return samples, nil
}

// GetByMissionID returns a mission's samples, most recent first.
func (r *TelemetryRepository) GetByMissionID(ctx context.Context, missionID uuid.UUID) ([]models.Telemetry, error) {
	var samples []models.Telemetry
	query := `SELECT * FROM telemetry WHERE mission_id = $1 ORDER BY timestamp DESC`

	err := r.db.SelectContext(ctx, &samples, query, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get telemetry: %w", err)
	}

	return samples, nil
}
