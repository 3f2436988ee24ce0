package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "server.pid")

	require.NoError(t, SavePID(path, 4242))
	assert.ErrorIs(t, SavePID(path, 1), ErrPIDExists)

	pid, err := LoadPID(path)
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)

	RemovePID(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSavePID_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, SavePID("", 1), ErrPIDPathEmpty)
}

func TestLoadPID_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	_, err := LoadPID(path)
	assert.Error(t, err)
}
