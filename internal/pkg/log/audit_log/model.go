package audit_log

import "time"

type AuditLog struct {
	ID           uint   `gorm:"primaryKey"`
	RayTraceCode string `gorm:"size:100;not null"`

	Domain     string `gorm:"size:100;not null"`
	Action     string `gorm:"size:100;not null"`
	Function   string `gorm:"size:150;not null"`
	ResourceID string `gorm:"size:64"`
	Success    bool   `gorm:"not null"`
	InputData  string `gorm:"type:text"`
	OutputData string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
