package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"subspace-catalog/cmd/bootstrap"
	"subspace-catalog/internal/infra/database/admin"
	"subspace-catalog/internal/infra/database/migrations"
	"subspace-catalog/internal/infra/database/postgres"
	"subspace-catalog/internal/pkg/log/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type options struct {
	Start   bool
	Stop    bool
	Seed    bool
	Update  bool
	DBCheck bool
	PIDFile string
}

func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	opts, err := parseOptions(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil // uso já impresso pelo pflag
	}
	if err != nil {
		return err
	}

	if !opts.anyOperation() {
		fmt.Println("Nenhuma operação informada. Use --help para listar as opções disponíveis.")
		return nil
	}

	if opts.Stop {
		if err := stopServer(opts.PIDFile); err != nil {
			return fmt.Errorf("falha ao parar servidor: %w", err)
		}
		fmt.Println("Servidor finalizado com sucesso.")
		return nil
	}

	if err := bootstrap.Environment(); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.With("cli")

	var db *gorm.DB
	if opts.requiresDatabase() {
		db, err = postgres.InitPostgres()
		if err != nil {
			return err
		}
		defer postgres.Close()
	}

	if opts.Update || opts.Seed {
		manager := migrations.NewManager(db)
		for _, step := range []struct {
			enabled  bool
			category migrations.Category
		}{
			{opts.Update, migrations.Update},
			{opts.Seed, migrations.Seed},
		} {
			if !step.enabled {
				continue
			}
			applied, err := manager.Apply(context.Background(), step.category)
			if err != nil {
				return fmt.Errorf("falha ao aplicar migrations de %s: %w", step.category, err)
			}
			log.Info("migrations aplicadas", zap.String("category", string(step.category)), zap.Int("count", len(applied)))
		}
	}

	if opts.DBCheck {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		status, err := admin.Check(ctx, db)
		if err != nil {
			return fmt.Errorf("falha ao checar banco de dados: %w", err)
		}
		log.Info("banco de dados ativo",
			zap.Int("tables", len(status.Tables)),
			zap.Strings("found", status.Tables),
		)
		if !status.Healthy() {
			return fmt.Errorf("tabelas ausentes: %s (execute --migration-update)", strings.Join(status.Missing, ", "))
		}
	}

	if opts.Start {
		if err := startServer(opts.PIDFile); err != nil {
			return fmt.Errorf("falha ao iniciar servidor: %w", err)
		}
	}

	return nil
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("subspace-catalog", pflag.ContinueOnError)
	fs.BoolVar(&opts.Start, "start", false, "Inicia o servidor HTTP")
	fs.BoolVar(&opts.Stop, "stop", false, "Finaliza o servidor HTTP")
	fs.BoolVar(&opts.Seed, "migration-seed", false, "Aplica migrations de seed")
	fs.BoolVar(&opts.Update, "migration-update", false, "Aplica migrations de atualização")
	fs.BoolVar(&opts.DBCheck, "db-check", false, "Checa status do banco de dados")
	fs.StringVar(&opts.PIDFile, "pid-file", defaultPIDFile, "Arquivo PID usado por --start e --stop")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func (o options) anyOperation() bool {
	return o.Start || o.Stop || o.Seed || o.Update || o.DBCheck
}

func (o options) requiresDatabase() bool {
	return o.Seed || o.Update || o.DBCheck
}
