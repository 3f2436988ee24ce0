package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"subspace-catalog/cmd/server/routes"
	"subspace-catalog/internal/pkg/log/logger"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HTTPServer struct {
	server *http.Server
	log    *zap.Logger
}

func NewHTTPServer(db *gorm.DB) (*HTTPServer, error) {
	router, err := routes.SetupRouter(db)
	if err != nil {
		return nil, err
	}
	port := fmt.Sprintf(":%s", viper.GetString("server.http.port"))

	return &HTTPServer{
		server: &http.Server{
			Addr:              port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: logger.With("server"),
	}, nil
}

func (s *HTTPServer) Start() error {
	s.log.Info("iniciando servidor", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			s.log.Info("servidor finalizado")
			return nil
		}
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info("encerrando servidor")
	return s.server.Shutdown(ctx)
}
