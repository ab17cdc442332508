package services

import (
	"testing"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func createTestMission(status models.MissionStatus, durationMinutes *float64) models.Mission {
	m := models.Mission{
		ID:     uuid.New(),
		Name:   "Survey " + string(status),
		Status: status,
	}
	if durationMinutes != nil {
		start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		end := start.Add(time.Duration(*durationMinutes * float64(time.Minute)))
		m.StartTime = &start
		m.EndTime = &end
	}
	return m
}

func minutes(v float64) *float64 {
	return &v
}

// ============================================================================
// ORGANIZATION REPORT
// ============================================================================

func TestBuildOrganizationReport_NoMissions(t *testing.T) {
	report := buildOrganizationReport(nil)

	assert.Equal(t, 0, report.TotalMissions)
	assert.Equal(t, 0.0, report.SuccessRate)
	assert.Equal(t, 0.0, report.FailureRate)
	assert.Equal(t, 0.0, report.AvgMissionDuration)
}

func TestBuildOrganizationReport_AverageDuration(t *testing.T) {
	missions := []models.Mission{
		createTestMission(models.MissionCompleted, minutes(10)),
		createTestMission(models.MissionCompleted, minutes(20)),
	}

	report := buildOrganizationReport(missions)

	assert.Equal(t, 15.0, report.AvgMissionDuration, "average of 10 and 20 minutes should be exactly 15.0")
	assert.Equal(t, 100.0, report.SuccessRate)
	assert.Equal(t, 0.0, report.FailureRate)
}

func TestBuildOrganizationReport_Rates(t *testing.T) {
	missions := []models.Mission{
		createTestMission(models.MissionCompleted, minutes(30)),
		createTestMission(models.MissionCompleted, minutes(60)),
		createTestMission(models.MissionAborted, nil),
		createTestMission(models.MissionPlanned, nil),
	}

	report := buildOrganizationReport(missions)

	assert.Equal(t, 4, report.TotalMissions)
	assert.Equal(t, 50.0, report.SuccessRate)
	assert.Equal(t, 25.0, report.FailureRate)
	assert.Equal(t, 45.0, report.AvgMissionDuration)
}

func TestBuildOrganizationReport_CompletedWithoutTimesExcludedFromAverage(t *testing.T) {
	// A COMPLETED mission with missing time bounds counts toward the success
	// rate but contributes nothing to the duration average.
	missions := []models.Mission{
		createTestMission(models.MissionCompleted, minutes(10)),
		createTestMission(models.MissionCompleted, nil),
	}

	report := buildOrganizationReport(missions)

	assert.Equal(t, 100.0, report.SuccessRate)
	assert.Equal(t, 10.0, report.AvgMissionDuration)
}

func TestBuildOrganizationReport_NoCompletedDurations(t *testing.T) {
	missions := []models.Mission{
		createTestMission(models.MissionAborted, minutes(10)),
		createTestMission(models.MissionInProgress, nil),
	}

	report := buildOrganizationReport(missions)

	assert.Equal(t, 2, report.TotalMissions)
	assert.Equal(t, 0.0, report.SuccessRate)
	assert.Equal(t, 50.0, report.FailureRate)
	assert.Equal(t, 0.0, report.AvgMissionDuration, "aborted durations do not enter the average")
}

func TestBuildOrganizationReport_AverageWithinIndividualBounds(t *testing.T) {
	missions := []models.Mission{
		createTestMission(models.MissionCompleted, minutes(5)),
		createTestMission(models.MissionCompleted, minutes(12.5)),
		createTestMission(models.MissionCompleted, minutes(47)),
	}

	report := buildOrganizationReport(missions)

	assert.GreaterOrEqual(t, report.AvgMissionDuration, 5.0)
	assert.LessOrEqual(t, report.AvgMissionDuration, 47.0)
}

// ============================================================================
// MISSION REPORTS
// ============================================================================

func TestBuildMissionReports_DurationRegardlessOfStatus(t *testing.T) {
	// Per-mission duration is not restricted to COMPLETED.
	aborted := createTestMission(models.MissionAborted, minutes(7.5))
	planned := createTestMission(models.MissionPlanned, nil)

	reports := buildMissionReports([]models.Mission{aborted, planned})

	assert.Len(t, reports, 2)

	assert.Equal(t, aborted.ID, reports[0].ID)
	if assert.NotNil(t, reports[0].Duration) {
		assert.Equal(t, 7.5, *reports[0].Duration)
	}

	assert.Equal(t, planned.ID, reports[1].ID)
	assert.Nil(t, reports[1].Duration, "missing time bounds mean no duration")
}

func TestBuildMissionReports_CarriesGeometry(t *testing.T) {
	mission := createTestMission(models.MissionInProgress, nil)
	mission.Area = &models.GeoJSONPolygon{
		Type:        "Polygon",
		Coordinates: [][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
	}
	mission.FlightPath = &models.GeoJSONLineString{
		Type:        "LineString",
		Coordinates: [][]float64{{0, 0}, {1, 1}},
	}

	reports := buildMissionReports([]models.Mission{mission})

	assert.Len(t, reports, 1)
	assert.Equal(t, mission.Area, reports[0].Area)
	assert.Equal(t, mission.FlightPath, reports[0].FlightPath)
	assert.Equal(t, mission.Name, reports[0].Name)
	assert.Equal(t, models.MissionInProgress, reports[0].Status)
}

func TestBuildMissionReports_Empty(t *testing.T) {
	reports := buildMissionReports(nil)

	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}
