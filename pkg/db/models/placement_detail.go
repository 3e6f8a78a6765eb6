package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/edusphere/edusphere-backend/pkg/types"
)

// PlacementDetail holds the single placement record per college.
type PlacementDetail struct {
	ID                  uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CollegeID           uuid.UUID           `gorm:"column:college_id;type:uuid;not null;uniqueIndex"`
	PlacementPercentage float64             `gorm:"column:placement_percentage;not null"`
	AvgPackage          types.PackageAmount `gorm:"column:avg_package;type:numeric(10,2);not null"`
	MaxPackage          types.PackageAmount `gorm:"column:max_package;type:numeric(10,2);not null"`
	CompaniesVisited    pq.StringArray      `gorm:"column:companies_visited;type:text[];not null"`
	ProofURL            string              `gorm:"column:proof_url;not null;default:''"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
