package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/menu"
)

// FileStore persists plans as JSON files under a directory, one file per
// plan, named <id>.json.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates a file-backed store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the plan to <dir>/<id>.json.
func (s *FileStore) Save(ctx context.Context, p menu.Plan) error {
	if err := errors.ValidatePlanID(p.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return menu.WritePlanFile(p, s.path(p.ID))
}

// Get reads a plan by ID.
func (s *FileStore) Get(ctx context.Context, id string) (menu.Plan, error) {
	if err := errors.ValidatePlanID(id); err != nil {
		return menu.Plan{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := menu.ReadPlanFile(s.path(id))
	if os.IsNotExist(rootCause(err)) {
		return menu.Plan{}, errors.New(errors.ErrCodePlanNotFound, "no plan %q", id)
	}
	if err != nil {
		return menu.Plan{}, err
	}
	return p, nil
}

// List returns all plans in the directory, skipping unreadable files.
func (s *FileStore) List(ctx context.Context) ([]menu.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var plans []menu.Plan
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p, err := menu.ReadPlanFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Delete removes a plan file. Missing files are ignored.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidatePlanID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file store.
func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// rootCause unwraps to the innermost error for os.IsNotExist checks.
func rootCause(err error) error {
	for err != nil {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
	return err
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
