package solution

import "encoding/json"

type CreateSolutionRequestDto struct {
	Identifier   string          `json:"identifier" binding:"required,max=255"`
	Name         string          `json:"name" binding:"required,max=255"`
	ConfigSchema json.RawMessage `json:"configSchema"`
}

type ReadSolutionRequestDto struct {
	ID         string `form:"id"`
	Identifier string `form:"identifier"`
}

type ListSolutionRequestDto struct {
	Page     int `form:"page"`
	PageSize int `form:"size"`
}
