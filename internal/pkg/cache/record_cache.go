package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RecordCache guarda registros persistidos por chave. Somente registros são
// armazenados; respostas apresentadas são sempre montadas de novo.
type RecordCache[R any] struct {
	store *cache.Cache
}

// NewRecordCache cria o cache; ttl <= 0 desativa a expiração.
func NewRecordCache[R any](ttl time.Duration) *RecordCache[R] {
	if ttl <= 0 {
		return &RecordCache[R]{store: cache.New(cache.NoExpiration, 0)}
	}
	return &RecordCache[R]{store: cache.New(ttl, 2*ttl)}
}

func (c *RecordCache[R]) Save(key string, record R) {
	c.store.SetDefault(key, record)
}

func (c *RecordCache[R]) Get(key string) (R, bool) {
	var zero R
	v, found := c.store.Get(key)
	if !found {
		return zero, false
	}
	r, ok := v.(R)
	if !ok {
		return zero, false
	}
	return r, true
}
