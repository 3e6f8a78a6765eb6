package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is a phone-first account. The OTP columns hold the hash of the
// most recent code and its expiry; both clear once the code is consumed.
type Student struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Phone        string     `gorm:"column:phone;not null;uniqueIndex"`
	OTPHash      *string    `gorm:"column:otp_hash"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Profile *StudentProfile `gorm:"foreignKey:StudentID"`
}
