package solution

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
)

var (
	controllerInstance Controller
	once               sync.Once
	initErr            error

	ErrNotInitialized = errors.New("solution controller not initialized")
)

type Config struct {
	CacheTTL time.Duration
}

// New inicializa o singleton do controller de solution com todas as suas dependências
func New(db *gorm.DB, cfg Config) (Controller, error) {
	once.Do(func() {
		if db == nil {
			initErr = errors.New("database connection cannot be nil")
			return
		}

		controllerInstance = NewController(NewService(NewRepository(db), cfg.CacheTTL))
	})

	return controllerInstance, initErr
}

// Use retorna a instância singleton do controller
func Use() (Controller, error) {
	if controllerInstance == nil {
		return nil, ErrNotInitialized
	}
	return controllerInstance, nil
}
