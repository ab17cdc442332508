package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisdb "github.com/vivekadapa/Drone-Management-System/internal/database/redis"
	"github.com/vivekadapa/Drone-Management-System/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	organizationReportKey = "reports:organization"
	missionReportsKey     = "reports:missions"

	// Reports are invalidated on every mission write; the TTL is only a
	// backstop against a missed invalidation.
	reportCacheTTL = 10 * time.Minute
)

// ReportCache keeps the unfiltered organization and mission reports in Redis.
// Range-filtered reports are never cached, the key space is unbounded.
type ReportCache struct {
	client *redisdb.Client
}

func NewReportCache(client *redisdb.Client) *ReportCache {
	return &ReportCache{client: client}
}

func (c *ReportCache) GetOrganizationReport(ctx context.Context) (*models.OrganizationReport, error) {
	raw, err := c.client.GetClient().Get(ctx, organizationReportKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached organization report: %w", err)
	}

	var report models.OrganizationReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("failed to decode cached organization report: %w", err)
	}

	return &report, nil
}

func (c *ReportCache) SetOrganizationReport(ctx context.Context, report *models.OrganizationReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode organization report: %w", err)
	}

	return c.client.GetClient().Set(ctx, organizationReportKey, raw, reportCacheTTL).Err()
}

func (c *ReportCache) GetMissionReports(ctx context.Context) ([]models.MissionReport, error) {
	raw, err := c.client.GetClient().Get(ctx, missionReportsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached mission reports: %w", err)
	}

	var reports []models.MissionReport
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode cached mission reports: %w", err)
	}

	return reports, nil
}

func (c *ReportCache) SetMissionReports(ctx context.Context, reports []models.MissionReport) error {
	raw, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to encode mission reports: %w", err)
	}

	return c.client.GetClient().Set(ctx, missionReportsKey, raw, reportCacheTTL).Err()
}

// Invalidate drops both cached reports. Called on every mission write.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	return c.client.GetClient().Del(ctx, organizationReportKey, missionReportsKey).Err()
}
