package audit_log

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	instance *Service
	once     sync.Once
	initErr  error

	ErrLogNotInitialized = errors.New("audit logger not initialized")
)

type Config struct {
	Enabled bool
}

// New inicializa apenas 1x (se Enabled=true)
func New(db *gorm.DB, cfg Config, log *zap.Logger) (*Service, error) {
	once.Do(func() {
		if !cfg.Enabled {
			initErr = errors.New("audit logger disabled in config")
			return
		}
		if db == nil {
			initErr = errors.New("database required for audit log")
			return
		}

		instance = NewService(NewRepository(db), log)
	})

	return instance, initErr
}

// LogAsync registra auditoria se o logger estiver ativo; caso contrário não faz nada.
func LogAsync(ctx context.Context, entry AuditLog) {
	if instance == nil {
		return
	}
	instance.LogAsync(ctx, entry)
}

// Flush aguarda as gravações pendentes antes do encerramento.
func Flush() {
	if instance == nil {
		return
	}
	instance.Wait()
}
