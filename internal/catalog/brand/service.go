package brand

import (
	"context"
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/cache"
	"subspace-catalog/internal/pkg/util"
)

type Service interface {
	Create(ctx context.Context, brand model.Brand) (model.Brand, error)
	Read(ctx context.Context, id string) (model.Brand, error)
	List(ctx context.Context, page, pageSize int) ([]model.Brand, error)
}

type implService struct {
	Repository Repository
	cache      *cache.RecordCache[model.Brand]
}

func NewService(repository Repository, cacheTTL time.Duration) Service {
	return &implService{
		Repository: repository,
		cache:      cache.NewRecordCache[model.Brand](cacheTTL),
	}
}

func (s *implService) Create(ctx context.Context, brand model.Brand) (model.Brand, error) {
	if brand.Name == "" {
		return model.Brand{}, ErrInvalidInput
	}
	now := time.Now().UTC()
	created, err := s.Repository.Create(ctx, model.Brand{
		ID:        util.NewID(util.PrefixBrand),
		Name:      brand.Name,
		Image:     brand.Image,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Brand{}, err
	}
	s.cache.Save(created.ID, created)
	return created, nil
}

func (s *implService) Read(ctx context.Context, id string) (model.Brand, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached, nil
	}
	found, err := s.Repository.Read(ctx, id)
	if err != nil {
		return model.Brand{}, err
	}
	s.cache.Save(found.ID, found)
	return found, nil
}

func (s *implService) List(ctx context.Context, page, pageSize int) ([]model.Brand, error) {
	return s.Repository.List(ctx, page, pageSize)
}
