package model

import "time"

type Tenant struct {
	ID         string    `gorm:"type:varchar(64);primaryKey"`
	Identifier string    `gorm:"type:varchar(255);not null;unique"`
	Name       string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"type:timestamp without time zone;not null"`
	UpdatedAt  time.Time `gorm:"type:timestamp without time zone;not null"`
}

func (Tenant) TableName() string {
	return "tenant"
}
