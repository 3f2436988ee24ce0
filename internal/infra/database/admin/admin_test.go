package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingTables(t *testing.T) {
	assert.Empty(t, missingTables(RequiredTables, RequiredTables))
	assert.Equal(t, []string{"brand", "solution"}, missingTables(
		[]string{"access_log", "audit_log", "schema_migrations", "tenant"},
		RequiredTables,
	))
}

func TestStatus_Healthy(t *testing.T) {
	assert.True(t, Status{}.Healthy())
	assert.False(t, Status{Missing: []string{"tenant"}}.Healthy())
}
