package model

import (
	"encoding/json"
	"time"
)

type Solution struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	Identifier string `gorm:"type:varchar(255);not null;unique"`
	Name       string `gorm:"type:varchar(255);not null"`
	// ConfigSchema guarda o JSON Schema de configuração exatamente como recebido.
	ConfigSchema json.RawMessage `gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time       `gorm:"type:timestamp without time zone;not null"`
	UpdatedAt    time.Time       `gorm:"type:timestamp without time zone;not null"`
}

func (Solution) TableName() string {
	return "solution"
}
