package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded proof link keyed by document type, such as
// aicte_approval or placement_proof.
type Document struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CollegeID uuid.UUID `gorm:"column:college_id;type:uuid;not null;index"`
	Type      string    `gorm:"column:type;not null"`
	URL       string    `gorm:"column:url;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
