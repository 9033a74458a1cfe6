package favorites

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"zanara/internal/logger"
)

// Store keeps the saved-profiles set on local disk, independent of the
// server. Favoriting is client-only in this design: nothing syncs, and a
// missing file is simply an empty set.
type Store struct {
	mu   sync.Mutex
	path string
	ids  map[string]bool
}

func NewStore(path string) *Store {
	s := &Store{
		path: path,
		ids:  make(map[string]bool),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warn("could not read favorites file", "path", s.path)
		}
		return
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		logger.WithError(err).Warn("favorites file is corrupt, starting empty", "path", s.path)
		return
	}
	for _, id := range ids {
		s.ids[id] = true
	}
}

// flush persists the set. Write failures are logged, not surfaced: losing
// a favorite is annoying, blocking the browse view is worse.
func (s *Store) flush() {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		logger.WithError(err).Warn("could not encode favorites")
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.WithError(err).Warn("could not create favorites directory")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logger.WithError(err).Warn("could not write favorites file", "path", s.path)
	}
}

// Toggle flips membership and reports the new state.
func (s *Store) Toggle(profileID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[profileID] {
		delete(s.ids, profileID)
		s.flush()
		return false
	}
	s.ids[profileID] = true
	s.flush()
	return true
}

func (s *Store) Has(profileID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[profileID]
}

// All returns the saved ids, sorted for stable rendering.
func (s *Store) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
