package handlers

import (
	"net/http"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/models"
	"github.com/vivekadapa/Drone-Management-System/internal/services"
	"github.com/vivekadapa/Drone-Management-System/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (rh *ReportHandler) RegisterRoutes(router *gin.Engine) {
	reportGroup := router.Group("/api/reports")

	reportGroup.GET("/organization", rh.GetOrganizationReport)
	reportGroup.GET("/missions", rh.GetMissionReports)
}

func (rh *ReportHandler) GetOrganizationReport(c *gin.Context) {
	rng, err := parseReportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_RANGE", err.Error()))
		return
	}

	report, err := rh.reportService.OrganizationReport(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("REPORT_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(report))
}

func (rh *ReportHandler) GetMissionReports(c *gin.Context) {
	rng, err := parseReportRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_RANGE", err.Error()))
		return
	}

	reports, err := rh.reportService.MissionReports(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("REPORT_FAILED", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(reports))
}

// parseReportRange reads the optional from/to query parameters as RFC 3339
// timestamps. Both are optional; absent means unbounded.
func parseReportRange(c *gin.Context) (models.ReportRange, error) {
	var rng models.ReportRange

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return rng, err
		}
		rng.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return rng, err
		}
		rng.To = &t
	}

	return rng, nil
}
