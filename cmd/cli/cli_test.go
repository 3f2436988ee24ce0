package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"--migration-update", "--db-check"})
	require.NoError(t, err)

	assert.True(t, opts.Update)
	assert.True(t, opts.DBCheck)
	assert.False(t, opts.Start)
	assert.True(t, opts.anyOperation())
	assert.True(t, opts.requiresDatabase())
}

func TestParseOptions_StartOnly(t *testing.T) {
	opts, err := parseOptions([]string{"--start"})
	require.NoError(t, err)

	assert.True(t, opts.anyOperation())
	assert.False(t, opts.requiresDatabase())
}

func TestParseOptions_UnknownFlag(t *testing.T) {
	_, err := parseOptions([]string{"--db-delete"})
	assert.Error(t, err)
}

func TestRun_NoOperation(t *testing.T) {
	assert.NoError(t, run(nil))
}

func TestParseOptions_PIDFile(t *testing.T) {
	opts, err := parseOptions([]string{"--stop"})
	require.NoError(t, err)
	assert.Equal(t, defaultPIDFile, opts.PIDFile)

	opts, err = parseOptions([]string{"--stop", "--pid-file", "/tmp/catalog.pid"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog.pid", opts.PIDFile)
}

func TestRun_StopWithoutPIDFile(t *testing.T) {
	err := run([]string{"--stop", "--pid-file", filepath.Join(t.TempDir(), "missing.pid")})
	assert.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	_, err := parseOptions([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)

	assert.NoError(t, run([]string{"--help"}))
}
