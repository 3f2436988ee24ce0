package tenant

import (
	"context"
	"errors"
	"fmt"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/infra/database/postgres"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m model.Tenant) (model.Tenant, error)
	Read(ctx context.Context, m model.Tenant) (model.Tenant, error)
	List(ctx context.Context, page, pageSize int) ([]model.Tenant, error)
}

type implRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Create(ctx context.Context, m model.Tenant) (model.Tenant, error) {
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if postgres.IsUniqueViolation(result.Error) {
			return model.Tenant{}, ErrIdentifierDuplicated
		}
		return model.Tenant{}, fmt.Errorf("falha ao criar tenant: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.Tenant{}, fmt.Errorf("no rows affected")
	}
	return m, nil
}

func (r *implRepository) Read(ctx context.Context, m model.Tenant) (model.Tenant, error) {
	query := r.db.WithContext(ctx).Model(&model.Tenant{})
	var found model.Tenant
	switch {
	case m.ID != "":
		query = query.First(&found, "id = ?", m.ID)
	case m.Identifier != "":
		query = query.Where("identifier = ?", m.Identifier).First(&found)
	default:
		return model.Tenant{}, ErrInvalidInput
	}
	if query.Error != nil {
		if errors.Is(query.Error, gorm.ErrRecordNotFound) {
			return model.Tenant{}, ErrNotFound
		}
		return model.Tenant{}, fmt.Errorf("erro ao ler tenant: %w", query.Error)
	}
	return found, nil
}

func (r *implRepository) List(ctx context.Context, page, pageSize int) ([]model.Tenant, error) {
	var listTenant []model.Tenant
	page, pageSize = postgres.NormalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	result := r.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Order("created_at ASC, id ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&listTenant)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao listar tenants: %w", result.Error)
	}
	return listTenant, nil
}
