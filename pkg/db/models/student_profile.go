package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile carries the optional profile a student fills in after the
// first OTP login.
type StudentProfile struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentID      uuid.UUID `gorm:"column:student_id;type:uuid;not null;uniqueIndex"`
	FullName       string    `gorm:"column:full_name;not null"`
	Email          string    `gorm:"column:email;not null"`
	Country        string    `gorm:"column:country;not null"`
	State          string    `gorm:"column:state;not null"`
	District       string    `gorm:"column:district;not null"`
	EducationLevel string    `gorm:"column:education_level;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
