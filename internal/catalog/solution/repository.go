package solution

import (
	"context"
	"errors"
	"fmt"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/infra/database/postgres"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m model.Solution) (model.Solution, error)
	Read(ctx context.Context, m model.Solution) (model.Solution, error)
	List(ctx context.Context, page, pageSize int) ([]model.Solution, error)
}

type implRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Create(ctx context.Context, m model.Solution) (model.Solution, error) {
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if postgres.IsUniqueViolation(result.Error) {
			return model.Solution{}, ErrIdentifierDuplicated
		}
		return model.Solution{}, fmt.Errorf("falha ao criar solution: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.Solution{}, fmt.Errorf("no rows affected")
	}
	return m, nil
}

func (r *implRepository) Read(ctx context.Context, m model.Solution) (model.Solution, error) {
	query := r.db.WithContext(ctx).Model(&model.Solution{})
	var found model.Solution
	switch {
	case m.ID != "":
		query = query.First(&found, "id = ?", m.ID)
	case m.Identifier != "":
		query = query.Where("identifier = ?", m.Identifier).First(&found)
	default:
		return model.Solution{}, ErrInvalidInput
	}
	if query.Error != nil {
		if errors.Is(query.Error, gorm.ErrRecordNotFound) {
			return model.Solution{}, ErrNotFound
		}
		return model.Solution{}, fmt.Errorf("erro ao ler solution: %w", query.Error)
	}
	return found, nil
}

func (r *implRepository) List(ctx context.Context, page, pageSize int) ([]model.Solution, error) {
	var solutions []model.Solution
	page, pageSize = postgres.NormalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	result := r.db.WithContext(ctx).
		Model(&model.Solution{}).
		Order("created_at ASC, id ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&solutions)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao listar solutions: %w", result.Error)
	}
	return solutions, nil
}
