package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	dbtypes "github.com/edusphere/edusphere-backend/pkg/db/types"
)

// AcademicDetail holds one row of academic data per college, replaced
// wholesale on every submission.
type AcademicDetail struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CollegeID      uuid.UUID             `gorm:"column:college_id;type:uuid;not null;uniqueIndex"`
	CoursesOffered pq.StringArray        `gorm:"column:courses_offered;type:text[];not null"`
	FeesPerCourse  dbtypes.CourseFeeList `gorm:"column:fees_per_course;type:jsonb;not null;default:'[]'"`
	IntakeCapacity int                   `gorm:"column:intake_capacity;not null"`
	Accreditation  string                `gorm:"column:accreditation;not null"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
