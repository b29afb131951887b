package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// History is the SQLite-backed upload audit log.
type History struct {
	db *sql.DB
}

// UploadEntry is one logged upload.
type UploadEntry struct {
	ID             int64     `json:"id"`
	AnalysisID     string    `json:"analysis_id"`
	Filename       string    `json:"filename"`
	TotalRows      int       `json:"total_rows"`
	ImportedRows   int       `json:"imported_rows"`
	SkippedRows    int       `json:"skipped_rows"`
	SpendThreshold *float64  `json:"spend_threshold"`
	CreatedAt      time.Time `json:"created_at"`
}

// OpenHistory opens (creating if needed) the history database at dbPath.
func OpenHistory(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	h := &History{db: db}
	if err := h.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return h, nil
}

func (h *History) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := h.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// RecordUpload appends one upload to the log and returns its row id.
func (h *History) RecordUpload(e UploadEntry) (int64, error) {
	res, err := h.db.Exec(`
		INSERT INTO upload_logs (analysis_id, filename, total_rows, imported_rows, skipped_rows, spend_threshold)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.AnalysisID, e.Filename, e.TotalRows, e.ImportedRows, e.SkippedRows, e.SpendThreshold)
	if err != nil {
		return 0, fmt.Errorf("failed to record upload: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get upload log id: %w", err)
	}
	return id, nil
}

// ListUploads returns the most recent uploads, newest first.
func (h *History) ListUploads(limit int) ([]UploadEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := h.db.Query(`
		SELECT id, analysis_id, filename, total_rows, imported_rows, skipped_rows, spend_threshold, created_at
		FROM upload_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var out []UploadEntry
	for rows.Next() {
		var e UploadEntry
		var threshold sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.AnalysisID, &e.Filename, &e.TotalRows, &e.ImportedRows, &e.SkippedRows, &threshold, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan upload log: %w", err)
		}
		if threshold.Valid {
			v := threshold.Float64
			e.SpendThreshold = &v
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database connection.
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}
