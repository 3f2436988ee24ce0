package brand

import (
	"context"
	"errors"
	"fmt"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/infra/database/postgres"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m model.Brand) (model.Brand, error)
	Read(ctx context.Context, id string) (model.Brand, error)
	List(ctx context.Context, page, pageSize int) ([]model.Brand, error)
}

type implRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Create(ctx context.Context, m model.Brand) (model.Brand, error) {
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		return model.Brand{}, fmt.Errorf("falha ao criar brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Brand{}, fmt.Errorf("no rows affected")
	}
	return m, nil
}

func (r *implRepository) Read(ctx context.Context, id string) (model.Brand, error) {
	if id == "" {
		return model.Brand{}, ErrInvalidInput
	}
	var found model.Brand
	err := r.db.WithContext(ctx).First(&found, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Brand{}, ErrNotFound
		}
		return model.Brand{}, fmt.Errorf("erro ao ler brand: %w", err)
	}
	return found, nil
}

func (r *implRepository) List(ctx context.Context, page, pageSize int) ([]model.Brand, error) {
	var brands []model.Brand
	page, pageSize = postgres.NormalizePage(page, pageSize)
	result := r.db.WithContext(ctx).
		Model(&model.Brand{}).
		Order("created_at ASC, id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&brands)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao listar brands: %w", result.Error)
	}
	return brands, nil
}
