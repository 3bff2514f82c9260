package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// SnapshotFileName is the serialized database image written after every
	// mutation. VersionFileName records the schema version the image was
	// built with; the two are always read and written as a pair.
	SnapshotFileName = "tutoria.db"
	VersionFileName  = "tutoria.version"
)

// ErrStoreUnavailable is returned by repositories when the store failed to
// initialize. Callers that can degrade gracefully should treat it as "no
// data" rather than a hard failure.
var ErrStoreUnavailable = errors.New("store is not available")

// Store owns an in-memory SQLite database backed by a snapshot file on disk.
// The whole database is serialized to SnapshotFileName after every mutation,
// so a crash loses at most the current request. All queries run through the
// embedded gorm.DB; the single pooled connection keeps every session on the
// same in-memory database.
type Store struct {
	DB  *gorm.DB
	dir string

	mu        sync.Mutex
	available bool
}

// Open creates the in-memory database and, when a snapshot exists in dir,
// loads it. A missing or corrupt snapshot is not an error: the store starts
// empty and schema setup rebuilds it from the seed catalog.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := openMemoryDB()
	if err != nil {
		return nil, err
	}

	store := &Store{DB: db, dir: dir, available: true}

	if err := store.loadSnapshot(); err != nil {
		log.Printf("Snapshot could not be loaded, starting fresh: %v", err)
		// The connection may hold a half-deserialized image; discard it.
		store.closeQuietly()
		fresh, openErr := openMemoryDB()
		if openErr != nil {
			return nil, openErr
		}
		store.DB = fresh
	}

	return store, nil
}

func openMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	// An in-memory SQLite database is private to its connection. Pin the
	// pool to exactly one connection so every query sees the same data.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	return db, nil
}

// Available reports whether the store initialized correctly. Repositories
// check this before every operation.
func (s *Store) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// MarkUnavailable flips the store into degraded mode; subsequent repository
// calls return ErrStoreUnavailable.
func (s *Store) MarkUnavailable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = false
}

// SnapshotPath returns the location of the on-disk database image.
func (s *Store) SnapshotPath() string {
	return filepath.Join(s.dir, SnapshotFileName)
}

func (s *Store) versionPath() string {
	return filepath.Join(s.dir, VersionFileName)
}

// Persist serializes the in-memory database and atomically replaces the
// snapshot file. It is called after every mutating operation.
func (s *Store) Persist() error {
	if !s.Available() {
		return ErrStoreUnavailable
	}

	image, err := s.serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize database: %w", err)
	}

	tmp := s.SnapshotPath() + ".tmp"
	if err := os.WriteFile(tmp, image, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.SnapshotPath()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Version reads the recorded schema version. It returns 0 when the marker
// file is absent or unparseable, which forces a rebuild.
func (s *Store) Version() int {
	raw, err := os.ReadFile(s.versionPath())
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0
	}
	return v
}

// WriteVersion records the schema version alongside the snapshot.
func (s *Store) WriteVersion(v int) error {
	return os.WriteFile(s.versionPath(), []byte(strconv.Itoa(v)), 0o644)
}

// Reset removes the snapshot and version marker so the next startup rebuilds
// from the seed catalog.
func (s *Store) Reset() error {
	if err := os.Remove(s.SnapshotPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(s.versionPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) closeQuietly() {
	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

func (s *Store) loadSnapshot() error {
	image, err := os.ReadFile(s.SnapshotPath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(image) == 0 {
		return errors.New("snapshot file is empty")
	}
	if err := s.deserialize(image); err != nil {
		return err
	}
	// Deserialize accepts arbitrary bytes; verify the image is actually a
	// usable database before trusting it.
	var n int64
	if err := s.DB.Raw("SELECT COUNT(*) FROM sqlite_master").Scan(&n).Error; err != nil {
		return fmt.Errorf("snapshot failed verification: %w", err)
	}
	return nil
}

// serialize copies the full in-memory database into a byte image using the
// SQLite serialization API on the raw driver connection.
func (s *Store) serialize() ([]byte, error) {
	var image []byte
	err := s.withRawConn(func(conn *sqlite3.SQLiteConn) error {
		b, err := conn.Serialize("")
		if err != nil {
			return err
		}
		// Serialize returns memory owned by SQLite; copy before release.
		image = make([]byte, len(b))
		copy(image, b)
		return nil
	})
	return image, err
}

// deserialize replaces the in-memory database contents with the given image.
func (s *Store) deserialize(image []byte) error {
	return s.withRawConn(func(conn *sqlite3.SQLiteConn) error {
		return conn.Deserialize(image, "")
	})
}

func (s *Store) withRawConn(fn func(*sqlite3.SQLiteConn) error) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	conn, err := sqlDB.Conn(context.Background())
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		sqliteConn, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		return fn(sqliteConn)
	})
}
