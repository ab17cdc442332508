package services

import (
	"context"
	"fmt"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"

	"github.com/google/uuid"
)

type DroneService struct {
	droneRepo *repository.DroneRepository
}

func NewDroneService(droneRepo *repository.DroneRepository) *DroneService {
	return &DroneService{droneRepo: droneRepo}
}

// clampBattery keeps battery readings inside [0, 100]. Operators and drones
// both occasionally report out-of-range values.
func clampBattery(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

func (s *DroneService) CreateDrone(ctx context.Context, req models.CreateDroneRequest) (*models.Drone, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.DroneIdle
	}

	drone := &models.Drone{
		Name:         req.Name,
		Status:       status,
		BatteryLevel: clampBattery(req.BatteryLevel),
		Location:     req.Location,
	}

	if err := s.droneRepo.Create(ctx, drone); err != nil {
		return nil, fmt.Errorf("failed to create drone: %w", err)
	}

	return drone, nil
}

func (s *DroneService) GetDroneByID(ctx context.Context, id uuid.UUID) (*models.Drone, error) {
	return s.droneRepo.GetByID(ctx, id)
}

func (s *DroneService) GetAllDrones(ctx context.Context) ([]models.Drone, error) {
	drones, err := s.droneRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drones: %w", err)
	}

	return drones, nil
}

func (s *DroneService) UpdateDrone(ctx context.Context, id uuid.UUID, req models.UpdateDroneRequest) (*models.Drone, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if req.BatteryLevel != nil {
		clamped := clampBattery(*req.BatteryLevel)
		req.BatteryLevel = &clamped
	}

	if err := s.droneRepo.UpdatePartial(ctx, id, &req); err != nil {
		return nil, err
	}

	return s.droneRepo.GetByID(ctx, id)
}

func (s *DroneService) DeleteDrone(ctx context.Context, id uuid.UUID) error {
	return s.droneRepo.Delete(ctx, id)
}
