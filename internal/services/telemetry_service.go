package services

import (
	"context"
	"fmt"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"

	"github.com/google/uuid"
)

type TelemetryService struct {
	telemetryRepo *repository.TelemetryRepository
	droneRepo     *repository.DroneRepository
}

func NewTelemetryService(telemetryRepo *repository.TelemetryRepository, droneRepo *repository.DroneRepository) *TelemetryService {
	return &TelemetryService{
		telemetryRepo: telemetryRepo,
		droneRepo:     droneRepo,
	}
}

// AddTelemetry appends a sample for a drone. mission_id is optional, a drone
// may report outside an active mission.
func (s *TelemetryService) AddTelemetry(ctx context.Context, droneID uuid.UUID, req models.CreateTelemetryRequest) (*models.Telemetry, error) {
	if _, err := s.droneRepo.GetByID(ctx, droneID); err != nil {
		return nil, fmt.Errorf("drone %s does not exist", droneID)
	}

	telemetry := &models.Telemetry{
		DroneID:   droneID,
		MissionID: req.MissionID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Altitude:  req.Altitude,
		Battery:   clampBattery(req.Battery),
		Status:    req.Status,
	}

	if err := s.telemetryRepo.Create(ctx, telemetry); err != nil {
		return nil, fmt.Errorf("failed to create telemetry: %w", err)
	}

	return telemetry, nil
}

func (s *TelemetryService) GetTelemetryByDrone(ctx context.Context, droneID uuid.UUID) ([]models.Telemetry, error) {
	samples, err := s.telemetryRepo.GetByDroneID(ctx, droneID)
	if err != nil {
		return nil, fmt.Errorf("failed to get telemetry: %w", err)
	}

	return samples, nil
}
