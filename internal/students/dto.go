package students

import (
	"time"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// ProfileInput is the student profile form, upserted as a whole.
type ProfileInput struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Country        string `json:"country" validate:"required"`
	State          string `json:"state" validate:"required"`
	District       string `json:"district" validate:"required"`
	EducationLevel string `json:"education_level" validate:"required"`
}

// BrowseFilters narrow the approved-college browse.
type BrowseFilters struct {
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
	Search   string `json:"q,omitempty"`
}

// CollegeSummary is one row of the student-facing browse list.
type CollegeSummary struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Code           string               `json:"code"`
	CollegeType    enums.CollegeType    `json:"college_type"`
	Country        string               `json:"country"`
	State          string               `json:"state"`
	District       string               `json:"district"`
	ApprovalStatus enums.ApprovalStatus `json:"approval_status"`
	ValidUntil     *time.Time           `json:"valid_until,omitempty"`
}

// BrowseResult is a cursor page of approved colleges.
type BrowseResult struct {
	Colleges   []CollegeSummary `json:"colleges"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// CollegeDetail is the public view of one approved college.
type CollegeDetail struct {
	College        *models.College      `json:"college"`
	ApprovalStatus enums.ApprovalStatus `json:"approval_status"`
}

func toSummary(college models.College, effective enums.ApprovalStatus) CollegeSummary {
	return CollegeSummary{
		ID:             college.ID,
		Name:           college.Name,
		Code:           college.Code,
		CollegeType:    college.CollegeType,
		Country:        college.Country,
		State:          college.State,
		District:       college.District,
		ApprovalStatus: effective,
		ValidUntil:     college.ValidUntil,
	}
}
