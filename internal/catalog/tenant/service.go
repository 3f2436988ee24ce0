package tenant

import (
	"context"
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/cache"
	"subspace-catalog/internal/pkg/util"
)

type Service interface {
	Create(ctx context.Context, tenant model.Tenant) (model.Tenant, error)
	Read(ctx context.Context, tenant model.Tenant) (model.Tenant, error)
	List(ctx context.Context, page, pageSize int) ([]model.Tenant, error)
}

type implService struct {
	Repository Repository
	cache      *cache.RecordCache[model.Tenant]
	now        func() time.Time
}

func NewService(repository Repository, cacheTTL time.Duration) Service {
	return &implService{
		Repository: repository,
		cache:      cache.NewRecordCache[model.Tenant](cacheTTL),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *implService) Create(ctx context.Context, tenant model.Tenant) (model.Tenant, error) {
	if tenant.Identifier == "" || tenant.Name == "" {
		return model.Tenant{}, ErrInvalidInput
	}
	now := s.now()
	created, err := s.Repository.Create(ctx, model.Tenant{
		ID:         util.NewID(util.PrefixTenant),
		Identifier: tenant.Identifier,
		Name:       tenant.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return model.Tenant{}, err
	}
	s.remember(created)
	return created, nil
}

func (s *implService) Read(ctx context.Context, tenant model.Tenant) (model.Tenant, error) {
	if key := cacheKey(tenant); key != "" {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}
	found, err := s.Repository.Read(ctx, tenant)
	if err != nil {
		return model.Tenant{}, err
	}
	s.remember(found)
	return found, nil
}

func (s *implService) List(ctx context.Context, page, pageSize int) ([]model.Tenant, error) {
	return s.Repository.List(ctx, page, pageSize)
}

func (s *implService) remember(t model.Tenant) {
	s.cache.Save("id:"+t.ID, t)
	s.cache.Save("identifier:"+t.Identifier, t)
}

func cacheKey(t model.Tenant) string {
	switch {
	case t.ID != "":
		return "id:" + t.ID
	case t.Identifier != "":
		return "identifier:" + t.Identifier
	default:
		return ""
	}
}
