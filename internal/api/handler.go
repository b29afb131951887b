// Package api exposes the upload and analysis endpoints over gin. Errors
// are returned as {"detail": message} with 400/404 status codes.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Miguelll86/customer-segmentation/internal/campaign"
	"github.com/Miguelll86/customer-segmentation/internal/config"
	"github.com/Miguelll86/customer-segmentation/internal/model"
	"github.com/Miguelll86/customer-segmentation/internal/store"
)

// Handler wires the API routes to the stores and catalog.
type Handler struct {
	store   *store.MemoryStore
	history *store.History
	catalog campaign.Catalog
	cfg     *config.AppConfig
}

// NewHandler creates the API handler. history may be nil, in which case
// upload logging is disabled.
func NewHandler(memStore *store.MemoryStore, history *store.History, catalog campaign.Catalog, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:   memStore,
		history: history,
		catalog: catalog,
		cfg:     cfg,
	}
}

// RegisterRoutes registers all API routes on the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload", h.Upload)

	router.GET("/analysis/:id/overview", h.GetOverview)
	router.GET("/analysis/:id/customers", h.GetCustomers)
	router.GET("/analysis/:id/customers/count", h.GetCustomersCount)
	router.GET("/analysis/:id/marketing", h.GetMarketing)
	router.GET("/analysis/:id/trend", h.GetTrend)

	router.GET("/segments", h.ListSegments)
	router.GET("/history", h.ListHistory)
	router.GET("/health", h.Health)
}

// detail writes the error body shape shared by all endpoints.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// analysisOr404 loads an analysis or writes the 404 response.
func (h *Handler) analysisOr404(c *gin.Context) (*model.Analysis, bool) {
	a, err := h.store.Get(c.Param("id"))
	if err != nil {
		detail(c, http.StatusNotFound, "Analisi non trovata")
		return nil, false
	}
	return a, true
}

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListSegments returns the fixed segment set for the UI.
// GET /api/segments
func (h *Handler) ListSegments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"segments": model.Segments})
}

// ListHistory returns the most recent uploads from the audit log.
// GET /api/history
func (h *Handler) ListHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, gin.H{"uploads": []store.UploadEntry{}})
		return
	}
	uploads, err := h.history.ListUploads(50)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Errore lettura storico caricamenti")
		return
	}
	if uploads == nil {
		uploads = []store.UploadEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}
