package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Miguelll86/customer-segmentation/internal/api"
	"github.com/Miguelll86/customer-segmentation/internal/campaign"
	"github.com/Miguelll86/customer-segmentation/internal/config"
	"github.com/Miguelll86/customer-segmentation/internal/store"
)

// Server is the HTTP server hosting the segmentation API.
type Server struct {
	router  *gin.Engine
	store   *store.MemoryStore
	history *store.History
	api     *api.Handler
}

// NewServer wires stores, catalog and routes together.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	history, err := store.OpenHistory(filepath.Join(dataDir, "segmenter.db"))
	if err != nil {
		// Uploads still work without the audit log.
		log.Printf("upload history disabled: %v", err)
		history = nil
	}

	memStore := store.NewMemoryStore(cfg.Data.MaxAnalyses)
	handler := api.NewHandler(memStore, history, campaign.DefaultCatalog(), cfg)

	s := &Server{
		router:  gin.Default(),
		store:   memStore,
		history: history,
		api:     handler,
	}
	s.setupRoutes(cfg)
	return s
}

// setupRoutes installs CORS and the API group.
func (s *Server) setupRoutes(cfg *config.AppConfig) {
	allowed := make(map[string]bool, len(cfg.CORS.Origins))
	for _, o := range cfg.CORS.Origins {
		allowed[o] = true
	}

	s.router.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases server resources.
func (s *Server) Close() error {
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}
