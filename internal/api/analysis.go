package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Miguelll86/customer-segmentation/internal/model"
	"github.com/Miguelll86/customer-segmentation/internal/report"
)

// GetOverview returns the KPI overview of one analysis.
// GET /api/analysis/:id/overview
func (h *Handler) GetOverview(c *gin.Context) {
	a, ok := h.analysisOr404(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Overview(a))
}

// GetCustomers returns a customer page, optionally filtered by segment.
// GET /api/analysis/:id/customers?segment=&skip=&limit=
func (h *Handler) GetCustomers(c *gin.Context) {
	a, ok := h.analysisOr404(c)
	if !ok {
		return
	}

	seg, ok := segmentFilter(c)
	if !ok {
		detail(c, http.StatusBadRequest, "Segmento non valido")
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(report.DefaultPageLimit)))
	if err != nil {
		limit = report.DefaultPageLimit
	}

	customers := report.Page(report.FilterBySegment(a, seg), skip, limit)
	c.JSON(http.StatusOK, customers)
}

// GetCustomersCount returns the customer count for pagination. An invalid
// segment value counts everything rather than failing.
// GET /api/analysis/:id/customers/count?segment=
func (h *Handler) GetCustomersCount(c *gin.Context) {
	a, ok := h.analysisOr404(c)
	if !ok {
		return
	}
	seg, ok := segmentFilter(c)
	if !ok {
		seg = nil
	}
	c.JSON(http.StatusOK, gin.H{"count": len(report.FilterBySegment(a, seg))})
}

// GetMarketing returns the per-segment campaign summary.
// GET /api/analysis/:id/marketing
func (h *Handler) GetMarketing(c *gin.Context) {
	a, ok := h.analysisOr404(c)
	if !ok {
		return
	}
	params := report.MarketingParams{
		RevenueUplift:  h.cfg.Marketing.RevenueUplift,
		ConversionRate: h.cfg.Marketing.ConversionRate,
		ROIEstimate:    h.cfg.Marketing.ROIEstimate,
	}
	c.JSON(http.StatusOK, report.Marketing(a, h.catalog, params))
}

// GetTrend returns the weekly segment trend.
// GET /api/analysis/:id/trend
func (h *Handler) GetTrend(c *gin.Context) {
	a, ok := h.analysisOr404(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend_settimanale": report.Trend(a)})
}

// segmentFilter parses the optional segment query parameter. ok is false
// when a value is present but not a valid segment.
func segmentFilter(c *gin.Context) (*model.Segment, bool) {
	raw := c.Query("segment")
	if raw == "" {
		return nil, true
	}
	seg, ok := model.ParseSegment(raw)
	if !ok {
		return nil, false
	}
	return &seg, true
}
