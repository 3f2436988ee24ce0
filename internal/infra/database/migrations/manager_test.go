package migrations

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	updates, err := Load(scripts, Update)
	require.NoError(t, err)
	require.NotEmpty(t, updates)

	for i := 1; i < len(updates); i++ {
		assert.False(t, updates[i].Version.Before(updates[i-1].Version), "migrations fora de ordem")
	}
	assert.Equal(t, Update, updates[0].Category)
	assert.Contains(t, updates[0].SQL, "CREATE TABLE IF NOT EXISTS tenant")

	seeds, err := Load(scripts, Seed)
	require.NoError(t, err)
	assert.NotEmpty(t, seeds)
}

func TestLoad_OrdersAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/update/20250302000000_b.sql": {Data: []byte("SELECT 2;")},
		"sql/update/20250301000000_a.sql": {Data: []byte("SELECT 1;")},
		"sql/update/README.md":            {Data: []byte("ignored")},
	}

	got, err := Load(fsys, Update)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "20250301000000_a.sql", got[0].Name)
	assert.Equal(t, "20250302000000_b.sql", got[1].Name)

	none, err := Load(fsys, Seed)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoad_InvalidName(t *testing.T) {
	fsys := fstest.MapFS{"sql/seed/seed.sql": {Data: []byte("SELECT 1;")}}

	_, err := Load(fsys, Seed)
	assert.Error(t, err)
}

func TestLoad_UnknownCategory(t *testing.T) {
	_, err := Load(scripts, Category("rollback"))
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	ts, err := parseVersion("20250301120000_create.sql")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), ts)

	for _, name := range []string{"create.sql", "2025_create.sql", "20251399000000_create.sql"} {
		_, err := parseVersion(name)
		assert.Error(t, err, name)
	}
}
