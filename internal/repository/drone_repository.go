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

type DroneRepository struct {
	db *sqlx.DB
}

func NewDroneRepository(db *sqlx.DB) *DroneRepository {
	return &DroneRepository{db: db}
}

func (r *DroneRepository) Create(ctx context.Context, drone *models.Drone) error {
	if drone.ID == uuid.Nil {
		drone.ID = uuid.New()
	}
	drone.CreatedAt = time.Now()
	drone.UpdatedAt = time.Now()

	query := `
		INSERT INTO drones (
			id, name, status, battery_level, location, created_at, updated_at
		) VALUES (
			:id, :name, :status, :battery_level, :location, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, drone)
	if err != nil {
		return fmt.Errorf("failed to create drone: %w", err)
	}

	return nil
}

func (r *DroneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Drone, error) {
	var drone models.Drone
	query := `SELECT * FROM drones WHERE id = $1`

	err := r.db.GetContext(ctx, &drone, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("drone %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return &drone, nil
}

func (r *DroneRepository) GetAll(ctx context.Context) ([]models.Drone, error) {
	var drones []models.Drone
	query := `SELECT * FROM drones ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &drones, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get drones: %w", err)
	}

	return drones, nil
}

// UpdatePartial updates only the provided fields of a drone.
func (r *DroneRepository) UpdatePartial(ctx context.Context, id uuid.UUID, req *models.UpdateDroneRequest) error {
	updateFields := []string{}
	args := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	if req.Name != nil {
		updateFields = append(updateFields, "name = :name")
		args["name"] = req.Name
	}
	if req.Status != nil {
		updateFields = append(updateFields, "status = :status")
		args["status"] = req.Status
	}
	if req.BatteryLevel != nil {
		updateFields = append(updateFields, "battery_level = :battery_level")
		args["battery_level"] = req.BatteryLevel
	}
	if req.Location != nil {
		updateFields = append(updateFields, "location = :location")
		args["location"] = req.Location
	}

	updateFields = append(updateFields, "updated_at = :updated_at")

	query := fmt.Sprintf(`UPDATE drones SET %s WHERE id = :id`, strings.Join(updateFields, ", "))

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update drone: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("drone %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *DroneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := utils.ExecWithCheck(ctx, r.db, `DELETE FROM drones WHERE id = $1`, utils.ExecDelete, id)
	if errors.Is(err, utils.ErrNoRowsAffected) {
		return fmt.Errorf("drone %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete drone: %w", err)
	}

	return nil
}
