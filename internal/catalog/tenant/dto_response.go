package tenant

import (
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/presenter"
)

const Object = "tenant"

// TenantResponseDto é a forma pública de um tenant. Novos campos do modelo só
// aparecem aqui quando adicionados explicitamente.
type TenantResponseDto struct {
	Object     string    `json:"object"`
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TenantsResponseDto = presenter.ListResponse[TenantResponseDto]

var Presenter = presenter.New(Object, func(object string, t model.Tenant) TenantResponseDto {
	return TenantResponseDto{
		Object:     object,
		ID:         t.ID,
		Identifier: t.Identifier,
		Name:       t.Name,
		CreatedAt:  t.CreatedAt,
	}
})
