package handlers

import (
	"net/http"
	"time"

	"bengkel_manager/internal/usecase"
	"bengkel_manager/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard cards and the financial report.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Dashboard(c.Request.Context(), tenantID)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Financial reports income and expenses over ?from=yyyy-mm-dd&to=yyyy-mm-dd.
// Missing bounds default to the current month.
func (h *ReportHandler) Financial(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid from date", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid to date", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		// Include the whole closing day.
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	summary, err := h.usecase.Financial(c.Request.Context(), tenantID, from, to)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}
