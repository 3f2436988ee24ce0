package tenant

// CreateTenantRequestDto representa a requisição para criar um novo tenant
type CreateTenantRequestDto struct {
	Identifier string `json:"identifier" binding:"required,max=255"`
	Name       string `json:"name" binding:"required,max=255"`
}

type ReadTenantRequestDto struct {
	ID         string `form:"id"`
	Identifier string `form:"identifier"`
}

type ListTenantRequestDto struct {
	Page     int `form:"page"`
	PageSize int `form:"size"`
}
