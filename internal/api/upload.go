package api

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Miguelll86/customer-segmentation/internal/importer"
	"github.com/Miguelll86/customer-segmentation/internal/ingest"
	"github.com/Miguelll86/customer-segmentation/internal/model"
	"github.com/Miguelll86/customer-segmentation/internal/store"
)

// Upload ingests an arrivals file, runs the segmentation pipeline, stores
// the result, and returns the analysis identifier.
// POST /api/upload (multipart, field "file", .xlsx or .csv)
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		detail(c, http.StatusBadRequest, "Nessun file caricato")
		return
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") && !strings.HasSuffix(name, ".csv") {
		detail(c, http.StatusBadRequest, "File deve essere .xlsx, .xls o .csv")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		detail(c, http.StatusBadRequest, "File non leggibile")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		detail(c, http.StatusBadRequest, "File non leggibile")
		return
	}

	table, err := ingest.DecodeFile(fileHeader.Filename, data)
	if err != nil {
		detail(c, http.StatusBadRequest, "File non valido: "+err.Error())
		return
	}
	if table.Empty() {
		detail(c, http.StatusBadRequest, "Il file è vuoto")
		return
	}

	result := importer.Run(table)
	if len(result.Customers) == 0 {
		detail(c, http.StatusBadRequest,
			"Nessuna riga analizzata. Controlla che il file abbia la prima riga con le intestazioni (es. numero notti, numero ospiti, canale, data arrivo, ...).")
		return
	}

	analysis := &model.Analysis{
		ID:        uuid.New().String(),
		Filename:  fileHeader.Filename,
		CreatedAt: time.Now(),
		Customers: result.Customers,
		Threshold: result.Threshold,
	}
	h.store.Put(analysis)

	if h.history != nil {
		_, err := h.history.RecordUpload(store.UploadEntry{
			AnalysisID:     analysis.ID,
			Filename:       analysis.Filename,
			TotalRows:      result.TotalRows,
			ImportedRows:   result.Imported,
			SkippedRows:    result.Skipped,
			SpendThreshold: result.Threshold,
		})
		if err != nil {
			// The analysis itself succeeded; the audit log is best effort.
			log.Printf("failed to record upload history: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis_id":    analysis.ID,
		"total_arrivals": len(result.Customers),
		"message":        "File elaborato. Usa analysis_id per la dashboard.",
	})
}
