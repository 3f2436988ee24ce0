package brand

type CreateBrandRequestDto struct {
	Name  string `json:"name" binding:"required,max=255"`
	Image string `json:"image" binding:"omitempty,url"`
}

type ReadBrandRequestDto struct {
	ID string `form:"id" binding:"required"`
}

type ListBrandRequestDto struct {
	Page     int `form:"page"`
	PageSize int `form:"size"`
}
