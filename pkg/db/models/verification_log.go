package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// VerificationLog is the append-only audit trail of officer decisions.
// Rows are never updated or deleted.
type VerificationLog struct {
	ID        uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CollegeID uuid.UUID                `gorm:"column:college_id;type:uuid;not null;index"`
	OfficerID uuid.UUID                `gorm:"column:officer_id;type:uuid;not null"`
	Action    enums.VerificationAction `gorm:"column:action;type:verification_action;not null"`
	Remarks   string                   `gorm:"column:remarks;not null"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime"`

	Officer *GovernmentUser `gorm:"foreignKey:OfficerID"`
}
