package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"subspace-catalog/cmd/bootstrap"
	"subspace-catalog/internal/infra/database/postgres"
	"subspace-catalog/internal/pkg/system"
)

const defaultPIDFile = "run/server.pid"

// startServer sobe a aplicação em primeiro plano e só retorna após SIGINT/SIGTERM.
// O arquivo PID impede duas instâncias com o mesmo caminho.
func startServer(pidPath string) error {
	if err := system.SavePID(pidPath, os.Getpid()); err != nil {
		return err
	}
	defer system.RemovePID(pidPath)

	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("não foi possível criar a aplicação: %w", err)
	}
	defer postgres.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Start(ctx)
}

// stopServer sinaliza o processo registrado em pidPath. O arquivo é removido
// pelo próprio servidor ao encerrar.
func stopServer(pidPath string) error {
	pid, err := system.LoadPID(pidPath)
	if err != nil {
		return err
	}
	return system.TerminateProcess(pid)
}
