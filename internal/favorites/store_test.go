package favorites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAndHas(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "favorites.json"))

	assert.False(t, s.Has("p1"))
	assert.True(t, s.Toggle("p1"))
	assert.True(t, s.Has("p1"))
	assert.False(t, s.Toggle("p1"))
	assert.False(t, s.Has("p1"))
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "favorites.json")

	s := NewStore(path)
	s.Toggle("p2")
	s.Toggle("p1")

	reopened := NewStore(path)
	assert.True(t, reopened.Has("p1"))
	assert.True(t, reopened.Has("p2"))
	assert.Equal(t, []string{"p1", "p2"}, reopened.All())
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	assert.Empty(t, s.All())

	// Still usable; the next write replaces the corrupt file.
	s.Toggle("p1")
	assert.True(t, NewStore(path).Has("p1"))
}
