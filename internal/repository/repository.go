package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Dan9191/auth-service/internal/models"
)

// ErrStoreUnavailable indicates the store file is missing, unreadable, or not
// valid JSON. All repository errors wrap it.
var ErrStoreUnavailable = errors.New("user store unavailable")

// database is the persisted document: one JSON object holding the full
// ordered user list.
type database struct {
	Users []models.User `json:"users"`
}

// Repository provides load/append operations over a single JSON file.
//
// Writes replace the whole document atomically (temp file + rename), so a
// reader never observes a partial snapshot. The mutex serializes writers
// within this process only; callers that check uniqueness against a LoadAll
// snapshot before appending still race each other (see service tests).
type Repository struct {
	path string
	mu   sync.Mutex
}

// NewRepository initializes a repository backed by the file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Init creates the store file with an empty user list if it does not exist.
// LoadAll stays strict: a missing file is an error there.
func (r *Repository) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return r.write(&database{Users: []models.User{}})
}

// LoadAll reads the persisted document and returns all users in file order.
func (r *Repository) LoadAll() ([]models.User, error) {
	db, err := r.read()
	if err != nil {
		return nil, err
	}
	return db.Users, nil
}

// AppendUser appends one record to the current snapshot and persists the full
// updated document. Write failures are returned, never swallowed.
func (r *Repository) AppendUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.read()
	if err != nil {
		return err
	}
	db.Users = append(db.Users, *user)
	return r.write(db)
}

// Backup copies the current snapshot into dir under a timestamped name and
// returns the path written.
func (r *Repository) Backup(dir string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup dir: %w", err)
	}
	name := fmt.Sprintf("users-%s.json", time.Now().UTC().Format("20060102T150405"))
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return dst, nil
}

func (r *Repository) read() (*database, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	db := &database{}
	if err := json.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return db, nil
}

// write persists the full document via temp file + rename so a concurrent
// reader sees either the old snapshot or the new one, never a torn write.
func (r *Repository) write(db *database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".users-*")
	if err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
