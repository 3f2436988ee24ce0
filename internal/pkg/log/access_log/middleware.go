package access_log

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	TraceContextKey = "RayTraceCode"
	TraceHeader     = "X-Ray-Trace"
)

// pending acompanha as gravações assíncronas ainda em andamento.
var pending sync.WaitGroup

// Middleware gera o código de rastreio da requisição, registra o acesso no
// logger e, quando repo != nil, persiste a entrada de forma assíncrona.
func Middleware(log *zap.Logger, repo Repository) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now().UTC()
		trace := c.GetHeader(TraceHeader)
		if _, err := uuid.Parse(trace); err != nil {
			trace = uuid.NewString()
		}
		c.Set(TraceContextKey, trace)
		c.Header(TraceHeader, trace)

		c.Next()

		latency := time.Since(start)
		entry := AccessLog{
			RayTraceCode: trace,
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			Host:         c.Request.Host,
			StatusCode:   c.Writer.Status(),
			IP:           c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
			Referer:      c.Request.Referer(),
			ContentType:  c.ContentType(),
			UserLanguage: c.GetHeader("Accept-Language"),
			RequestTime:  start,
			LatencyMs:    float64(latency.Microseconds()) / 1000,
		}

		log.Info("requisição atendida",
			zap.String("trace", entry.RayTraceCode),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status", entry.StatusCode),
			zap.String("ip", entry.IP),
			zap.Duration("latency", latency),
		)

		if repo == nil {
			return
		}
		ctx := context.WithoutCancel(c.Request.Context())
		pending.Add(1)
		go func() {
			defer pending.Done()
			if err := repo.Save(ctx, entry); err != nil {
				log.Warn("falha ao gravar access log", zap.String("trace", entry.RayTraceCode), zap.Error(err))
			}
		}()
	}
}

// Flush aguarda as gravações de access log pendentes; chamar antes de fechar o banco.
func Flush() {
	pending.Wait()
}

// GetTraceCode devolve o código de rastreio definido pelo Middleware.
func GetTraceCode(c *gin.Context) *string {
	value, exists := c.Get(TraceContextKey)
	if !exists {
		return nil
	}
	trace, ok := value.(string)
	if !ok || trace == "" {
		return nil
	}
	return &trace
}
