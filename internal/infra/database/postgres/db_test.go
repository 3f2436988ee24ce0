package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestNormalizePage(t *testing.T) {
	page, size := NormalizePage(0, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = NormalizePage(3, 50)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)
}

func TestBuildDSN(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("databases.postgres.host", "db")
	viper.Set("databases.postgres.port", "5432")
	viper.Set("databases.postgres.user", "app")
	viper.Set("databases.postgres.pwd", "secret")
	viper.Set("databases.postgres.ssl_mode", "bogus")

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=appdb sslmode=disable",
		buildDSN(),
	)
}
