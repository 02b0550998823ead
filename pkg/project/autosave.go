package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KazukiMatoba/venue-layout-editor-sub001/pkg/observability"
)

// SnapshotStore keeps timestamped autosave copies of a project in a
// directory, pruning the oldest once a retention limit is exceeded. It is
// the crash-recovery net behind explicit saves: the editor snapshots on an
// interval, and the newest snapshot can be recovered when a project file is
// lost mid-session.
type SnapshotStore struct {
	mu      sync.Mutex
	baseDir string
	keep    int
	clock   func() time.Time
}

// NewSnapshotStore creates a snapshot store rooted at baseDir.
// If baseDir is empty it defaults to ~/.config/venueplan/autosave/.
// keep is the number of snapshots retained per project; zero or negative
// means keep everything.
func NewSnapshotStore(baseDir string, keep int) (*SnapshotStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "venueplan", "autosave")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create autosave dir: %w", err)
	}
	return &SnapshotStore{baseDir: baseDir, keep: keep, clock: time.Now}, nil
}

// Dir returns the directory snapshots are written to.
func (s *SnapshotStore) Dir() string { return s.baseDir }

// Snapshot writes one autosave copy of the project and prunes old ones.
// It returns the path of the snapshot written.
func (s *SnapshotStore) Snapshot(p *Project) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.clock().UTC().Format("20060102T150405.000")
	name := fmt.Sprintf("%s-%s.json", sanitize(p.Name), stamp)
	path := filepath.Join(s.baseDir, name)

	f, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("create snapshot %s: %w", path, err)
		observability.Store().OnAutosave(path, err)
		return "", err
	}
	if err := WriteJSON(p, f); err != nil {
		f.Close()
		observability.Store().OnAutosave(path, err)
		return "", err
	}
	if err := f.Close(); err != nil {
		observability.Store().OnAutosave(path, err)
		return "", err
	}

	if err := s.prune(p.Name); err != nil {
		observability.Store().OnAutosave(path, err)
		return "", err
	}
	observability.Store().OnAutosave(path, nil)
	return path, nil
}

// Latest returns the newest snapshot path for the named project, or "" if
// none exist.
func (s *SnapshotStore) Latest(projectName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := s.list(projectName)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", nil
	}
	return paths[len(paths)-1], nil
}

// Recover loads the newest snapshot for the named project.
// Returns (nil, nil) when no snapshot exists.
func (s *SnapshotStore) Recover(projectName string) (*Project, error) {
	path, err := s.Latest(projectName)
	if err != nil || path == "" {
		return nil, err
	}
	return Load(path)
}

// list returns the project's snapshot paths sorted oldest first.
// The timestamp format sorts lexically, so name order is time order.
func (s *SnapshotStore) list(projectName string) ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read autosave dir: %w", err)
	}

	prefix := sanitize(projectName) + "-"
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		paths = append(paths, filepath.Join(s.baseDir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// prune removes the oldest snapshots beyond the retention limit.
func (s *SnapshotStore) prune(projectName string) error {
	if s.keep <= 0 {
		return nil
	}
	paths, err := s.list(projectName)
	if err != nil {
		return err
	}
	for len(paths) > s.keep {
		if err := os.Remove(paths[0]); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("prune snapshot: %w", err)
		}
		paths = paths[1:]
	}
	return nil
}

// sanitize maps a project name to a safe file name fragment.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}
