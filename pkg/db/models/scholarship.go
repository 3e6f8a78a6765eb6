package models

import (
	"time"

	"github.com/google/uuid"
)

// Scholarship is a publicly listed scheme, seeded by migration and managed
// through the catalog service.
type Scholarship struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Amount      string    `gorm:"column:amount;not null"`
	Eligibility string    `gorm:"column:eligibility;not null"`
	Link        string    `gorm:"column:link;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
