package access_log

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryRepository struct {
	mu      sync.Mutex
	entries []AccessLog
}

func (m *memoryRepository) Save(_ context.Context, entry AccessLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryRepository) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func TestMiddleware_SetsTraceCode(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(nil, nil))

	var seen *string
	r.GET("/ping", func(c *gin.Context) {
		seen = GetTraceCode(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotNil(t, seen)
	_, err := uuid.Parse(*seen)
	assert.NoError(t, err)
	assert.Equal(t, *seen, w.Header().Get(TraceHeader))
}

func TestMiddleware_KeepsIncomingTrace(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(nil, nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	trace := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, trace)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, trace, w.Header().Get(TraceHeader))
}

func TestMiddleware_PersistsEntry(t *testing.T) {
	repo := &memoryRepository{}
	r := gin.New()
	r.Use(Middleware(nil, repo))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Eventually(t, func() bool { return repo.len() == 1 }, time.Second, 10*time.Millisecond)
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, http.StatusNotFound, repo.entries[0].StatusCode)
	assert.Equal(t, "/missing", repo.entries[0].Path)
}

type blockingRepository struct {
	release chan struct{}
	saved   chan AccessLog
}

func (b *blockingRepository) Save(_ context.Context, entry AccessLog) error {
	<-b.release
	b.saved <- entry
	return nil
}

func TestFlush_WaitsForPendingWrites(t *testing.T) {
	repo := &blockingRepository{release: make(chan struct{}), saved: make(chan AccessLog, 1)}
	r := gin.New()
	r.Use(Middleware(nil, repo))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	flushed := make(chan struct{})
	go func() {
		Flush()
		close(flushed)
	}()

	select {
	case <-flushed:
		t.Fatal("Flush retornou com gravação pendente")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("Flush não retornou após a gravação")
	}
	assert.Equal(t, "/ping", (<-repo.saved).Path)
}

func TestGetTraceCode_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetTraceCode(c))
}
