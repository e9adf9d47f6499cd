package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tradejournal/internal/domain"
	"tradejournal/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// stateKey is the single well-known key the journal blob lives under.
const stateKey = "journal-state"

// Repository implements ports.StateRepository as a key-value blob store
// over SQLite: the whole journal state is serialized to JSON and written
// under one key on every save.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository opens (or creates) the backing database and prepares the
// state table.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/journal.db"
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w (%w)", dbPath, err, ports.ErrDBConnection)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("failed to ping database at '%s': %w (%w)", dbPath, err, ports.ErrDBConnection)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// SQLite works best with a single connection from the Go driver.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}
	cfg.Logger.Info(context.Background(), "SQLite state store ready", map[string]interface{}{"path": dbPath})

	return repo, nil
}

func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS journal_state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema initialization: %w", err)
	}
	return nil
}

// Load reads the whole journal blob. A store that has never been saved
// to yields an empty state.
func (r *Repository) Load(ctx context.Context) (*domain.State, error) {
	const query = `SELECT payload FROM journal_state WHERE key = ?`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, stateKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug(ctx, "No persisted journal state found, starting empty")
		return domain.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journal state: %w (%w)", err, ports.ErrQueryFailed)
	}

	state := domain.NewState()
	if err := json.Unmarshal(payload, state); err != nil {
		return nil, fmt.Errorf("failed to decode journal state payload: %w", err)
	}
	if state.Comments == nil {
		state.Comments = make(map[string][]domain.Comment)
	}
	r.logger.Debug(ctx, "Journal state loaded", map[string]interface{}{
		"trades":        len(state.Trades),
		"manualEntries": len(state.ManualEntries),
	})
	return state, nil
}

// Save overwrites the journal blob with the given snapshot.
func (r *Repository) Save(ctx context.Context, state *domain.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode journal state: %w", err)
	}

	const query = `
	INSERT INTO journal_state (key, payload, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, stateKey, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save journal state: %w (%w)", err, ports.ErrUpdateFailed)
	}
	r.logger.Debug(ctx, "Journal state saved", map[string]interface{}{"bytes": len(payload)})
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	if r.db != nil {
		r.logger.Info(context.Background(), "Closing SQLite database connection")
		return r.db.Close()
	}
	return nil
}
