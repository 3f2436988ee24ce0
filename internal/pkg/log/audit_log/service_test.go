package audit_log

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu      sync.Mutex
	entries []AuditLog
	err     error
}

func (m *memoryRepository) Save(_ context.Context, entry AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func TestService_LogAsync(t *testing.T) {
	repo := &memoryRepository{}
	svc := NewService(repo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	svc.LogAsync(ctx, AuditLog{Domain: "tenant", Action: "create", Success: true})
	cancel()
	svc.Wait()

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "tenant", repo.entries[0].Domain)
}

func TestService_LogAsync_RepositoryError(t *testing.T) {
	repo := &memoryRepository{err: errors.New("boom")}
	svc := NewService(repo, nil)

	svc.LogAsync(context.Background(), AuditLog{Domain: "brand"})
	svc.Wait()

	assert.Empty(t, repo.entries)
}

func TestSerializeData(t *testing.T) {
	assert.Equal(t, "", SerializeData(nil))
	assert.Equal(t, `{"id":"t_1"}`, SerializeData(map[string]string{"id": "t_1"}))
	assert.Equal(t, "{C:<nil>}", SerializeData(struct{ C chan int }{}))
	assert.Equal(t, "texto livre", SerializeData("texto livre"))
	assert.Equal(t, `{"type":"object"}`, SerializeData(json.RawMessage(`{"type":"object"}`)))
}

func TestSerializeData_Truncates(t *testing.T) {
	long := strings.Repeat("é", maxPayloadLen)

	got := SerializeData(long)

	assert.True(t, strings.HasSuffix(got, truncateSuffix))
	assert.LessOrEqual(t, len(got), maxPayloadLen+len(truncateSuffix))
	assert.True(t, utf8.ValidString(got))
}
