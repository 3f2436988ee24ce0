package solution

import (
	"context"
	"encoding/json"
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/cache"
	"subspace-catalog/internal/pkg/util"
)

type Service interface {
	Create(ctx context.Context, solution model.Solution) (model.Solution, error)
	Read(ctx context.Context, solution model.Solution) (model.Solution, error)
	List(ctx context.Context, page, pageSize int) ([]model.Solution, error)
}

type implService struct {
	Repository Repository
	cache      *cache.RecordCache[model.Solution]
}

func NewService(repository Repository, cacheTTL time.Duration) Service {
	return &implService{
		Repository: repository,
		cache:      cache.NewRecordCache[model.Solution](cacheTTL),
	}
}

func (s *implService) Create(ctx context.Context, solution model.Solution) (model.Solution, error) {
	if solution.Identifier == "" || solution.Name == "" {
		return model.Solution{}, ErrInvalidInput
	}
	if len(solution.ConfigSchema) > 0 && !json.Valid(solution.ConfigSchema) {
		return model.Solution{}, ErrInvalidInput
	}
	now := time.Now().UTC()
	created, err := s.Repository.Create(ctx, model.Solution{
		ID:           util.NewID(util.PrefixSolution),
		Identifier:   solution.Identifier,
		Name:         solution.Name,
		ConfigSchema: solution.ConfigSchema,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.Solution{}, err
	}
	s.remember(created)
	return created, nil
}

func (s *implService) Read(ctx context.Context, solution model.Solution) (model.Solution, error) {
	if key := cacheKey(solution); key != "" {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}
	found, err := s.Repository.Read(ctx, solution)
	if err != nil {
		return model.Solution{}, err
	}
	s.remember(found)
	return found, nil
}

func (s *implService) List(ctx context.Context, page, pageSize int) ([]model.Solution, error) {
	return s.Repository.List(ctx, page, pageSize)
}

func (s *implService) remember(sol model.Solution) {
	s.cache.Save("id:"+sol.ID, sol)
	s.cache.Save("identifier:"+sol.Identifier, sol)
}

func cacheKey(sol model.Solution) string {
	switch {
	case sol.ID != "":
		return "id:" + sol.ID
	case sol.Identifier != "":
		return "identifier:" + sol.Identifier
	default:
		return ""
	}
}
