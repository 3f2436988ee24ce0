package solution

import (
	"encoding/json"
	"time"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/presenter"
	"subspace-catalog/internal/pkg/schema"
)

const (
	Object       = "solution"
	SchemaObject = "solution.schema"
)

// SolutionResponseDto não expõe o ConfigSchema; ele tem rota própria.
type SolutionResponseDto struct {
	Object     string    `json:"object"`
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SolutionsResponseDto = presenter.ListResponse[SolutionResponseDto]

// SolutionSchemaResponseDto traz o schema normalizado; null quando vazio.
type SolutionSchemaResponseDto struct {
	Object     string          `json:"object"`
	SolutionID string          `json:"solutionId"`
	Schema     json.RawMessage `json:"schema"`
}

var Presenter = presenter.New(Object, func(object string, s model.Solution) SolutionResponseDto {
	return SolutionResponseDto{
		Object:     object,
		ID:         s.ID,
		Identifier: s.Identifier,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
	}
})

var SchemaPresenter = presenter.New(SchemaObject, func(object string, s model.Solution) SolutionSchemaResponseDto {
	return SolutionSchemaResponseDto{
		Object:     object,
		SolutionID: s.ID,
		Schema:     schema.Normalize(schema.Input{Schema: s.ConfigSchema}),
	}
})
