package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// College is the institution account plus its verification state. The
// verification columns move together: status drives the portal workflow,
// is_locked freezes the submission form, and the approval columns carry the
// validity window once an officer approves.
type College struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string               `gorm:"column:name;not null"`
	Email          string               `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash   string               `gorm:"column:password_hash;not null"`
	Code           string               `gorm:"column:code;not null;uniqueIndex"`
	Address        string               `gorm:"column:address;not null"`
	CollegeType    enums.CollegeType    `gorm:"column:college_type;type:college_type;not null"`
	Country        string               `gorm:"column:country;not null"`
	State          string               `gorm:"column:state;not null"`
	District       string               `gorm:"column:district;not null"`
	PrincipalName  string               `gorm:"column:principal_name;not null"`
	PrincipalPhone string               `gorm:"column:principal_phone;not null"`
	Status         enums.CollegeStatus  `gorm:"column:status;type:college_status;not null;default:'PENDING'"`
	IsLocked       bool                 `gorm:"column:is_locked;not null;default:false"`
	Remarks        *string              `gorm:"column:remarks"`
	SubmittedAt    *time.Time           `gorm:"column:submitted_at"`
	VerifiedBy     *uuid.UUID           `gorm:"column:verified_by;type:uuid"`
	VerifiedAt     *time.Time           `gorm:"column:verified_at"`
	ApprovedAt     *time.Time           `gorm:"column:approved_at"`
	ValidUntil     *time.Time           `gorm:"column:valid_until"`
	ApprovalStatus enums.ApprovalStatus `gorm:"column:approval_status;type:approval_status;not null;default:'PENDING'"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	AcademicDetails  *AcademicDetail  `gorm:"foreignKey:CollegeID"`
	PlacementDetails *PlacementDetail `gorm:"foreignKey:CollegeID"`
	Faculty          []Faculty        `gorm:"foreignKey:CollegeID"`
	Documents        []Document       `gorm:"foreignKey:CollegeID"`
}
