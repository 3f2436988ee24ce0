package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"subspace-catalog/internal/pkg/log/logger"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Constantes para os modos SSL permitidos no PostgreSQL
const (
	SSLDisable    = "disable"
	SSLRequire    = "require"
	SSLVerifyFull = "verify-full"
	SSLVerifyCA   = "verify-ca"
)

// Código SQLSTATE de violação de unicidade.
const uniqueViolation = "23505"

var (
	db      *gorm.DB
	once    sync.Once
	initErr error
)

// InitPostgres inicializa a conexão com o banco de dados PostgreSQL usando GORM.
// A conexão é criada apenas uma vez; chamadas seguintes devolvem a mesma instância.
func InitPostgres() (*gorm.DB, error) {
	once.Do(func() {
		log := logger.With("database")

		conn, err := gorm.Open(gormPostgres.Open(buildDSN()), &gorm.Config{
			Logger: gormLogger.Discard,
		})
		if err != nil {
			initErr = fmt.Errorf("erro ao abrir conexão GORM: %w", err)
			return
		}

		var sqlDB *sql.DB
		sqlDB, err = conn.DB()
		if err != nil {
			initErr = fmt.Errorf("erro ao obter *sql.DB do GORM: %w", err)
			return
		}

		if err := sqlDB.Ping(); err != nil {
			initErr = fmt.Errorf("erro ao testar conexão com o banco de dados: %w", err)
			return
		}

		db = conn
		log.Info("conexão GORM com PostgreSQL estabelecida")
	})

	return db, initErr
}

// Close encerra a conexão com o banco de dados e permite nova inicialização.
func Close() {
	if db == nil {
		return
	}

	log := logger.With("database")
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("erro ao obter *sql.DB para fechamento", zap.Error(err))
	} else if err := sqlDB.Close(); err != nil {
		log.Warn("erro ao fechar conexão com banco", zap.Error(err))
	}

	db = nil
	initErr = nil
	once = sync.Once{}
}

// IsUniqueViolation informa se err é uma violação de restrição UNIQUE.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// NormalizePage aplica os valores padrão de paginação.
func NormalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return page, pageSize
}

// buildDSN monta a string de conexão (Data Source Name) para o PostgreSQL
// a partir da configuração carregada pelo viper.
func buildDSN() string {
	host := viper.GetString("databases.postgres.host")
	port := viper.GetString("databases.postgres.port")
	user := viper.GetString("databases.postgres.user")
	pass := viper.GetString("databases.postgres.pwd")
	name := viper.GetString("databases.postgres.db_name")
	if name == "" {
		name = "appdb"
	}
	ssl := viper.GetString("databases.postgres.ssl_mode")
	if !isValidSSLMode(ssl) {
		logger.With("database").Warn("modo SSL inválido, usando o padrão",
			zap.String("ssl_mode", ssl),
			zap.String("default", SSLDisable),
		)
		ssl = SSLDisable
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl,
	)
}

// isValidSSLMode verifica se a string de modo SSL fornecida é um valor válido.
func isValidSSLMode(mode string) bool {
	switch mode {
	case SSLDisable, SSLRequire, SSLVerifyFull, SSLVerifyCA:
		return true
	default:
		return false
	}
}
