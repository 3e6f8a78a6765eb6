package colleges

import (
	dbtypes "github.com/edusphere/edusphere-backend/pkg/db/types"
)

// FacultyInput is one teaching staff row in a submission.
type FacultyInput struct {
	Name            string `json:"name" validate:"required"`
	Designation     string `json:"designation" validate:"required"`
	Qualification   string `json:"qualification" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	Department      string `json:"department" validate:"required"`
}

// PlacementInput is the placement block of a submission.
type PlacementInput struct {
	PlacementPercentage float64  `json:"placement_percentage" validate:"gte=0,lte=100"`
	AvgPackage          string   `json:"avg_package" validate:"required"`
	MaxPackage          string   `json:"max_package" validate:"required"`
	CompaniesVisited    []string `json:"companies_visited"`
}

// SubmissionInput mirrors the data-entry form a college fills in. Documents
// map a document type (aicte_approval, placement_proof, ...) to its URL.
type SubmissionInput struct {
	CoursesOffered []string              `json:"courses_offered" validate:"required,min=1"`
	FeesPerCourse  dbtypes.CourseFeeList `json:"fees_per_course"`
	IntakeCapacity int                   `json:"intake_capacity" validate:"gte=0"`
	Accreditation  string                `json:"accreditation" validate:"required"`
	Faculty        []FacultyInput        `json:"faculty" validate:"dive"`
	Placement      PlacementInput        `json:"placement"`
	Documents      map[string]string     `json:"documents"`
}
