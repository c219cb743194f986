package stopwords

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	s := Builtin()
	assert.Equal(t, "builtin", s.Source())
	for _, w := range []string{"the", "and", "is", "s", "t"} {
		assert.True(t, s.Contains(w), w)
	}
	for _, w := range []string{"cats", "summary", "climate"} {
		assert.False(t, s.Contains(w), w)
	}
}

func TestDefaultIsStableAndSafe(t *testing.T) {
	var wg sync.WaitGroup
	sets := make([]*Set, 16)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = Default()
		}(i)
	}
	wg.Wait()
	for _, s := range sets {
		assert.Same(t, sets[0], s)
	}
	d := Default()
	assert.Contains(t, []string{"snowball", "builtin"}, d.Source())
	assert.True(t, d.Contains("the"))
	assert.True(t, d.Contains("t"))
	assert.False(t, d.Contains("animals"))
}

// resetDefault clears the process-wide set and installs lookup as the
// Snowball lookup until the test ends.
func resetDefault(t *testing.T, lookup func(string) bool) {
	t.Helper()
	prevLookup, prevSet := isSnowballStop, defaultSet
	isSnowballStop = lookup
	defaultOnce = sync.Once{}
	defaultSet = nil
	t.Cleanup(func() {
		isSnowballStop = prevLookup
		defaultOnce = sync.Once{}
		defaultSet = prevSet
		if prevSet != nil {
			defaultOnce.Do(func() {})
		}
	})
}

func TestDefaultFallsBackToBuiltin(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) bool
	}{
		{name: "missing common words", lookup: func(string) bool { return false }},
		{name: "matches content words", lookup: func(string) bool { return true }},
		{name: "panics", lookup: func(string) bool { panic("stop list corrupted") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDefault(t, tt.lookup)
			d := Default()
			assert.Equal(t, "builtin", d.Source())
			assert.True(t, d.Contains("the"))
			assert.False(t, d.Contains("animals"))
			assert.Same(t, d, Default())
		})
	}
}

func TestSnowballCoversMoreThanBuiltin(t *testing.T) {
	d := Default()
	if d.Source() != "snowball" {
		t.Skip("snowball stop list unavailable")
	}
	assert.True(t, d.Contains("ourselves"))
	assert.False(t, Builtin().Contains("ourselves"))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("# custom list\nFoo\n\n  bar  \n"), 0o644))

	s, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file:"+path, s.Source())
	assert.True(t, s.Contains("foo"))
	assert.True(t, s.Contains("bar"))
	assert.False(t, s.Contains("the"))
	for _, w := range []string{"s", "t", "ll", "ve"} {
		assert.True(t, s.Contains(w), w)
	}
}

func TestFromFileErrors(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0o644))
	_, err = FromFile(empty)
	assert.Error(t, err)
}
