package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"dupescan/internal/logging"
	"dupescan/internal/metrics"
)

// DBFileName is the name of the cache database file inside the data directory.
const DBFileName = "image_cache.db"

// Store is the persistent fingerprint cache. It maps file paths to their
// last-known metadata and computed hashes so unchanged files are never
// reprocessed.
//
// The store is shared by all scan workers. Every operation is serialized
// through a single mutex and holds it for one statement only, so lock hold
// time stays negligible. The database runs in WAL mode with relaxed
// durability: losing the cache on a crash only forces recomputation, it
// never produces incorrect results.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open creates or opens the fingerprint cache inside dataDir. The directory
// must already exist and be writable; callers treat a failure here as fatal.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, DBFileName)

	// WAL gives much better concurrent read performance; NORMAL sync is
	// enough for a disposable cache. busy_timeout prevents spurious
	// "database is locked" errors.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to connect to cache database: %w", err)
	}

	// All writes funnel through the mutex anyway; a single connection keeps
	// temp tables and WAL checkpointing behavior predictable.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := s.initialize(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close database after initialization failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	logging.Info("Fingerprint cache initialized at %s", dbPath)
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS images (
		path        TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		size        INTEGER NOT NULL,
		created_at  INTEGER NOT NULL,
		modified_at INTEGER NOT NULL,
		phash       TEXT,
		content_hash TEXT,
		metadata    TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_images_phash ON images(phash);
	CREATE INDEX IF NOT EXISTS idx_images_content_hash ON images(content_hash);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.dbPath
}

// Get performs a validity-checked lookup. A hit requires the stored
// modification time and size to match the supplied values exactly; any
// mismatch is a miss, never an error. A miss returns (nil, nil).
func (s *Store) Get(path string, modifiedAt, size int64) (*ImageRecord, error) {
	start := time.Now()
	var err error
	defer func() { recordQuery("get", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT path, name, size, created_at, modified_at, phash, content_hash, metadata
		FROM images WHERE path = ? AND modified_at = ? AND size = ?`,
		path, modifiedAt, size,
	)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache lookup for %s: %w", path, err)
	}
	return rec, nil
}

// Put inserts or replaces the record keyed by its path.
func (s *Store) Put(rec *ImageRecord) error {
	start := time.Now()
	var err error
	defer func() { recordQuery("put", start, err) }()

	var meta sql.NullString
	if rec.Meta != nil {
		raw, jsonErr := json.Marshal(rec.Meta)
		if jsonErr != nil {
			return fmt.Errorf("serialize metadata for %s: %w", rec.Path, jsonErr)
		}
		meta = sql.NullString{String: string(raw), Valid: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO images
			(path, name, size, created_at, modified_at, phash, content_hash, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Path, rec.Name, rec.Size, rec.CreatedAt, rec.ModifiedAt,
		nullable(rec.PHash), nullable(rec.ContentHash), meta,
	)
	if err != nil {
		return fmt.Errorf("cache write for %s: %w", rec.Path, err)
	}
	return nil
}

// Prune deletes every row whose path is absent from the given set and
// returns the number of rows removed. Called after each scan so files that
// disappeared from disk do not linger in the cache.
func (s *Store) Prune(validPaths map[string]struct{}) (int64, error) {
	start := time.Now()
	var err error
	defer func() { recordQuery("prune", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return 0, fmt.Errorf("begin prune: %w", err)
	}

	deleted, err := pruneInTx(tx, validPaths)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return 0, errors.Join(err, fmt.Errorf("rollback also failed: %w", rbErr))
		}
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit prune: %w", err)
	}

	metrics.StoreRowsPruned.Add(float64(deleted))
	return deleted, nil
}

func pruneInTx(tx *sql.Tx, validPaths map[string]struct{}) (int64, error) {
	// Temp table anti-join: scales past SQLite's bound-parameter limit.
	_, err := tx.Exec(`
		CREATE TEMP TABLE IF NOT EXISTS valid_paths (path TEXT PRIMARY KEY);
		DELETE FROM valid_paths;`)
	if err != nil {
		return 0, fmt.Errorf("prepare valid path set: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO valid_paths VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("prepare valid path insert: %w", err)
	}
	defer stmt.Close()

	for path := range validPaths {
		if _, err := stmt.Exec(path); err != nil {
			return 0, fmt.Errorf("record valid path %s: %w", path, err)
		}
	}

	result, err := tx.Exec("DELETE FROM images WHERE path NOT IN (SELECT path FROM valid_paths)")
	if err != nil {
		return 0, fmt.Errorf("prune stale rows: %w", err)
	}

	return result.RowsAffected()
}

// Delete removes a single row by path. Deleting a path that has no row is
// not an error.
func (s *Store) Delete(path string) error {
	start := time.Now()
	var err error
	defer func() { recordQuery("delete", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec("DELETE FROM images WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("cache delete for %s: %w", path, err)
	}
	return nil
}

// Count returns the number of rows currently cached.
func (s *Store) Count() (int64, error) {
	start := time.Now()
	var err error
	defer func() { recordQuery("count", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err = s.db.QueryRow("SELECT COUNT(*) FROM images").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("cache row count: %w", err)
	}
	return n, nil
}

// scanRecord reads one row into an ImageRecord, deserializing the optional
// metadata column.
func scanRecord(row *sql.Row) (*ImageRecord, error) {
	var rec ImageRecord
	var phash, contentHash, meta sql.NullString

	err := row.Scan(
		&rec.Path, &rec.Name, &rec.Size, &rec.CreatedAt, &rec.ModifiedAt,
		&phash, &contentHash, &meta,
	)
	if err != nil {
		return nil, err
	}

	if phash.Valid {
		rec.PHash = &phash.String
	}
	if contentHash.Valid {
		rec.ContentHash = &contentHash.String
	}
	if meta.Valid {
		var m Metadata
		if jsonErr := json.Unmarshal([]byte(meta.String), &m); jsonErr == nil {
			rec.Meta = &m
		} else {
			logging.Warn("Discarding unreadable cached metadata for %s: %v", rec.Path, jsonErr)
		}
	}

	return &rec, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// recordQuery records cache store operation metrics.
func recordQuery(operation string, start time.Time, err error) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StoreQueryTotal.WithLabelValues(operation, status).Inc()
	metrics.StoreQueryDuration.WithLabelValues(operation).Observe(duration)
}
