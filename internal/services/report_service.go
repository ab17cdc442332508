package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"
)

// ReportService computes the organization and per-mission reports. Derived
// statistics only, no writes. The cache is optional and covers only the
// unfiltered variants; range-filtered queries always hit the store.
type ReportService struct {
	missionRepo *repository.MissionRepository
	reportCache *ReportCache
}

func NewReportService(missionRepo *repository.MissionRepository, reportCache *ReportCache) *ReportService {
	return &ReportService{
		missionRepo: missionRepo,
		reportCache: reportCache,
	}
}

// OrganizationReport aggregates all missions inside the range (or all missions
// when the range is empty) into fleet-wide rates and the average duration of
// completed flights.
func (s *ReportService) OrganizationReport(ctx context.Context, rng models.ReportRange) (*models.OrganizationReport, error) {
	cacheable := rng.IsZero() && s.reportCache != nil

	if cacheable {
		cached, err := s.reportCache.GetOrganizationReport(ctx)
		if err != nil {
			slog.Warn("report cache read failed, recomputing", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	missions, err := s.missionRepo.GetAllInRange(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to get missions for report: %w", err)
	}

	report := buildOrganizationReport(missions)

	if cacheable {
		if err := s.reportCache.SetOrganizationReport(ctx, report); err != nil {
			slog.Warn("report cache write failed", "error", err)
		}
	}

	return report, nil
}

// MissionReports emits one summary row per mission in the range. Duration is
// reported for any mission with both time bounds set, whatever its status.
func (s *ReportService) MissionReports(ctx context.Context, rng models.ReportRange) ([]models.MissionReport, error) {
	cacheable := rng.IsZero() && s.reportCache != nil

	if cacheable {
		cached, err := s.reportCache.GetMissionReports(ctx)
		if err != nil {
			slog.Warn("report cache read failed, recomputing", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	missions, err := s.missionRepo.GetAllInRange(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to get missions for report: %w", err)
	}

	reports := buildMissionReports(missions)

	if cacheable {
		if err := s.reportCache.SetMissionReports(ctx, reports); err != nil {
			slog.Warn("report cache write failed", "error", err)
		}
	}

	return reports, nil
}

// buildOrganizationReport folds missions into the organization summary.
// Rates are percentages of the total; the average duration counts only
// COMPLETED missions that carry both time bounds. Empty input yields all
// zeros, never NaN.
func buildOrganizationReport(missions []models.Mission) *models.OrganizationReport {
	report := &models.OrganizationReport{TotalMissions: len(missions)}
	if report.TotalMissions == 0 {
		return report
	}

	var completed, aborted int
	var durationSum float64
	var durationCount int

	for i := range missions {
		m := &missions[i]
		switch m.Status {
		case models.MissionCompleted:
			completed++
			if d := m.Duration(); d != nil {
				durationSum += *d
				durationCount++
			}
		case models.MissionAborted:
			aborted++
		}
	}

	total := float64(report.TotalMissions)
	report.SuccessRate = float64(completed) / total * 100
	report.FailureRate = float64(aborted) / total * 100
	if durationCount > 0 {
		report.AvgMissionDuration = durationSum / float64(durationCount)
	}

	return report
}

func buildMissionReports(missions []models.Mission) []models.MissionReport {
	reports := make([]models.MissionReport, 0, len(missions))
	for i := range missions {
		m := &missions[i]
		reports = append(reports, models.MissionReport{
			ID:         m.ID,
			Name:       m.Name,
			Status:     m.Status,
			Duration:   m.Duration(),
			Area:       m.Area,
			FlightPath: m.FlightPath,
		})
	}

	return reports
}
