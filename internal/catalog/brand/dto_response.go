package brand

import (
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/presenter"
)

const Object = "brand"

type BrandResponseDto struct {
	Object    string    `json:"object"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type BrandsResponseDto = presenter.ListResponse[BrandResponseDto]

var Presenter = presenter.New(Object, func(object string, b model.Brand) BrandResponseDto {
	return BrandResponseDto{
		Object:    object,
		ID:        b.ID,
		Name:      b.Name,
		Image:     b.Image,
		CreatedAt: b.CreatedAt,
	}
})
