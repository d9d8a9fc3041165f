package handler

import (
	"net/http"
	"time"

	"github.com/andreysazonov/office-booking/internal/domain/entity"
	domainerr "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/andreysazonov/office-booking/internal/domain/port/usecase"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles the read-only analytics endpoints
type ReportHandler struct {
	reportService usecase.ReportUseCase
	logger        coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportService usecase.ReportUseCase, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// parseFilter reads the shared from/to/location query parameters. Both date
// bounds are inclusive calendar dates.
func parseFilter(c *gin.Context) (entity.BookingFilter, error) {
	filter := entity.BookingFilter{
		Location: c.Query("location"),
	}

	if fromParam := c.Query("from"); fromParam != "" {
		from, err := entity.ParseDate(fromParam)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}

	if toParam := c.Query("to"); toParam != "" {
		// Bookings starting anywhere on the "to" date still count
		_, dayEnd, err := entity.DayBounds(toParam)
		if err != nil {
			return filter, err
		}
		to := dayEnd.Add(-time.Nanosecond)
		filter.To = &to
	}

	return filter, nil
}

// respondFilterError writes the error for a malformed filter parameter
func respondFilterError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: publicMessage(err),
	})
}

// respondReportError writes the error for a failed aggregation
func respondReportError(c *gin.Context, err error) {
	c.JSON(statusForError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: publicMessage(err),
	})
}

// UserStatistics handles the GET /reports/users endpoint
func (h *ReportHandler) UserStatistics(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondFilterError(c, err)
		return
	}

	stats, err := h.reportService.UserStatistics(c.Request.Context(), filter)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// WeekdayDistribution handles the GET /reports/weekdays endpoint
func (h *ReportHandler) WeekdayDistribution(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondFilterError(c, err)
		return
	}

	counts, err := h.reportService.WeekdayDistribution(c.Request.Context(), filter)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// LocationDistribution handles the GET /reports/locations endpoint
func (h *ReportHandler) LocationDistribution(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondFilterError(c, err)
		return
	}

	counts, err := h.reportService.LocationDistribution(c.Request.Context(), filter)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// HourDistribution handles the GET /reports/hours endpoint
func (h *ReportHandler) HourDistribution(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondFilterError(c, err)
		return
	}

	counts, err := h.reportService.HourDistribution(c.Request.Context(), filter)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Occupancy handles the GET /reports/occupancy endpoint
func (h *ReportHandler) Occupancy(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondFilterError(c, err)
		return
	}

	report, err := h.reportService.Occupancy(c.Request.Context(), filter)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export handles the GET /reports/export endpoint. It returns the flat rows
// an external spreadsheet collaborator turns into a workbook.
func (h *ReportHandler) Export(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondFilterError(c, err)
		return
	}

	rows, err := h.reportService.ExportRows(c.Request.Context(), filter)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
