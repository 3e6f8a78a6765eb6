package models

import (
	"time"

	"github.com/google/uuid"
)

// Faculty is one teaching staff entry submitted by a college.
type Faculty struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CollegeID       uuid.UUID `gorm:"column:college_id;type:uuid;not null;index"`
	Name            string    `gorm:"column:name;not null"`
	Designation     string    `gorm:"column:designation;not null"`
	Qualification   string    `gorm:"column:qualification;not null"`
	ExperienceYears int       `gorm:"column:experience_years;not null"`
	Department      string    `gorm:"column:department;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides GORM's pluralization.
func (Faculty) TableName() string {
	return "faculty"
}
