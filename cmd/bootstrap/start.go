package bootstrap

import (
	"context"
	"fmt"
	"time"

	"subspace-catalog/cmd/server"
	"subspace-catalog/internal/catalog/brand"
	"subspace-catalog/internal/catalog/solution"
	"subspace-catalog/internal/catalog/tenant"
	"subspace-catalog/internal/infra/database/postgres"
	"subspace-catalog/internal/pkg/log/access_log"
	"subspace-catalog/internal/pkg/log/audit_log"
	"subspace-catalog/internal/pkg/log/logger"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Application armazena as dependências centrais da aplicação.
type Application struct {
	server *server.HTTPServer
	log    *zap.Logger
}

func setDefaults() {
	viper.SetDefault("app.name", "subspace-catalog")
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("server.http.port", "8080")
	viper.SetDefault("databases.postgres.host", "localhost")
	viper.SetDefault("databases.postgres.port", "5432")
	viper.SetDefault("databases.postgres.ssl_mode", postgres.SSLDisable)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("cache.ttl_seconds", 60)
	viper.SetDefault("audit.enabled", true)
	viper.SetDefault("access_log.persist", false)
}

// Environment configura e lê o arquivo de configuração (configs.json) e
// inicializa o logger global a partir dele.
func Environment() error {
	setDefaults()
	viper.SetConfigName("configs")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/") // Para ambientes de produção
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fatal error in configuration file: %w", err)
	}

	return logger.Init(logger.Config{
		Level:       viper.GetString("log.level"),
		ServiceName: viper.GetString("app.name"),
		Development: viper.GetString("app.env") == "dev",
		OutputPath:  viper.GetString("log.output"),
	})
}

func cacheTTL() time.Duration {
	return time.Duration(viper.GetInt64("cache.ttl_seconds")) * time.Second
}

func initCatalogDomain(db *gorm.DB) error {
	ttl := cacheTTL()
	if _, err := tenant.New(db, tenant.Config{CacheTTL: ttl}); err != nil {
		return fmt.Errorf("tenant: %w", err)
	}
	if _, err := brand.New(db, brand.Config{CacheTTL: ttl}); err != nil {
		return fmt.Errorf("brand: %w", err)
	}
	if _, err := solution.New(db, solution.Config{CacheTTL: ttl}); err != nil {
		return fmt.Errorf("solution: %w", err)
	}
	return nil
}

// New prepara a aplicação (config, db, di) e retorna a instância.
func New() (*Application, error) {
	if err := Environment(); err != nil {
		return nil, err
	}
	log := logger.With("bootstrap")
	log.Info("configuração de ambiente carregada", zap.String("env", viper.GetString("app.env")))

	db, err := postgres.InitPostgres()
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}
	log.Info("conexão com o banco de dados inicializada")

	if _, err := audit_log.New(db, audit_log.Config{Enabled: viper.GetBool("audit.enabled")}, logger.With("audit")); err != nil {
		log.Warn("audit log desativado", zap.Error(err))
	}

	if err := initCatalogDomain(db); err != nil {
		return nil, fmt.Errorf("falha ao inicializar domínio do catálogo: %w", err)
	}
	log.Info("contêiner de dependências inicializado")

	srv, err := server.NewHTTPServer(db)
	if err != nil {
		return nil, err
	}

	return &Application{server: srv, log: log}, nil
}

func (a *Application) Start(ctx context.Context) error {
	a.log.Info("iniciando servidor", zap.String("env", viper.GetString("app.env")))

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("falha ao encerrar servidor: %w", err)
		}
		access_log.Flush()
		audit_log.Flush()
		logger.Sync()
		return <-errCh

	case err := <-errCh:
		return err
	}
}
