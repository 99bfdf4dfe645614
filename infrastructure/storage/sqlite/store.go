// ABOUTME: SQLite-backed website store used as the persistence collaborator
// ABOUTME: Keeps each website record as a JSON payload keyed by its ID

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

// WebsiteStore implements interfaces.WebsiteStorage
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore opens (or creates) the store at filePath
func NewWebsiteStore(filePath string) (*WebsiteStore, error) {
	if filePath == "" {
		filePath = "websites.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &WebsiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *WebsiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS websites (
			id TEXT PRIMARY KEY,
			creator_id TEXT NOT NULL,
			visibility TEXT NOT NULL,
			payload BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_websites_creator ON websites(creator_id);
	`)
	return err
}

// Save persists a website, replacing any record with the same ID
func (s *WebsiteStore) Save(ctx context.Context, website *domain.Website) error {
	if website == nil || website.ID == "" {
		return errors.New("website must have an ID")
	}

	payload, err := json.Marshal(website)
	if err != nil {
		return fmt.Errorf("failed to encode website: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO websites (id, creator_id, visibility, payload, created_at) VALUES (?, ?, ?, ?, ?)",
		website.ID, website.CreatorID, string(website.Visibility), payload, website.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save website: %w", err)
	}
	return nil
}

// Get retrieves a website by ID, returning nil when it does not exist
func (s *WebsiteStore) Get(ctx context.Context, id string) (*domain.Website, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM websites WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load website: %w", err)
	}

	var website domain.Website
	if err := json.Unmarshal(payload, &website); err != nil {
		return nil, fmt.Errorf("failed to decode website: %w", err)
	}
	return &website, nil
}

// Close closes the database connection
func (s *WebsiteStore) Close() error {
	return s.db.Close()
}
