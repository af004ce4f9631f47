package limfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLimFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)
	}

	lines := []string{
		"FIRM_ID=2002;SECCODE=GD0528;CLIENT_CODE=12;OPEN_BALANCE=0;",
		"FIRM_ID=2002;SECCODE=GD0530;CLIENT_CODE=12;OPEN_BALANCE=5;",
	}

	file, err := w.WriteLimFile(lines, "depo")
	require.NoError(t, err)
	assert.Equal(t, "depo-20260831-123045.lim", file.Name)
	assert.Equal(t, filepath.Join(dir, "lims", file.Name), file.Path)

	content, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(content))
}

func TestWriteLimFileSameSecondCollision(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)
	}

	first, err := w.WriteLimFile([]string{"a"}, "money")
	require.NoError(t, err)
	second, err := w.WriteLimFile([]string{"b"}, "money")
	require.NoError(t, err)
	third, err := w.WriteLimFile([]string{"c"}, "money")
	require.NoError(t, err)

	assert.Equal(t, "money-20260831-123045.lim", first.Name)
	assert.Equal(t, "money-20260831-123045-1.lim", second.Name)
	assert.Equal(t, "money-20260831-123045-2.lim", third.Name)

	content, err := os.ReadFile(second.Path)
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(content))
}
