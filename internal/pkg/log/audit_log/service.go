package audit_log

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Service struct {
	repo Repository
	log  *zap.Logger
	wg   sync.WaitGroup
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

func (s *Service) Log(ctx context.Context, entry AuditLog) error {
	return s.repo.Save(ctx, entry)
}

// LogAsync grava a entrada em goroutine destacada do ciclo de vida da requisição.
func (s *Service) LogAsync(ctx context.Context, entry AuditLog) {
	ctxDetached := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Log(ctxDetached, entry); err != nil {
			s.log.Warn("falha ao gravar audit log",
				zap.String("domain", entry.Domain),
				zap.String("action", entry.Action),
				zap.Error(err),
			)
		}
	}()
}

// Wait bloqueia até que todas as gravações pendentes terminem.
func (s *Service) Wait() {
	s.wg.Wait()
}
