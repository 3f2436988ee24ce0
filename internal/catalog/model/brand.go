package model

import "time"

type Brand struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Image     string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"type:timestamp without time zone;not null"`
	UpdatedAt time.Time `gorm:"type:timestamp without time zone;not null"`
}

func (Brand) TableName() string {
	return "brand"
}
