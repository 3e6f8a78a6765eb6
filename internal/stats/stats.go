package stats

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/types"
)

// Summary is the public landing page counter block.
type Summary struct {
	TotalColleges    int64  `json:"total_colleges"`
	ApprovedColleges int64  `json:"approved_colleges"`
	TotalStudents    int64  `json:"total_students"`
	AvgPackage       string `json:"avg_package"`
}

// Repository runs the aggregate queries behind the public stats.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a stats repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) CountColleges(ctx context.Context) (int64, error) {
	var count int64
	err := r.client.DB().WithContext(ctx).Model(&models.College{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountApprovedColleges(ctx context.Context) (int64, error) {
	var count int64
	err := r.client.DB().WithContext(ctx).
		Model(&models.College{}).
		Where("status = ?", enums.CollegeStatusApproved).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.client.DB().WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	return count, err
}

// ApprovedAvgPackages plucks the average package of every approved college.
func (r *Repository) ApprovedAvgPackages(ctx context.Context) ([]types.PackageAmount, error) {
	var amounts []types.PackageAmount
	err := r.client.DB().WithContext(ctx).
		Model(&models.PlacementDetail{}).
		Joins("JOIN colleges ON colleges.id = placement_details.college_id").
		Where("colleges.status = ?", enums.CollegeStatusApproved).
		Pluck("placement_details.avg_package", &amounts).Error
	return amounts, err
}

type statsRepository interface {
	CountColleges(ctx context.Context) (int64, error)
	CountApprovedColleges(ctx context.Context) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	ApprovedAvgPackages(ctx context.Context) ([]types.PackageAmount, error)
}

// Service assembles the public stats summary.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo statsRepository
}

// NewService builds the stats service.
func NewService(repo statsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stats repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.repo.CountColleges(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count colleges")
	}
	approved, err := s.repo.CountApprovedColleges(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count approved colleges")
	}
	students, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count students")
	}
	amounts, err := s.repo.ApprovedAvgPackages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate packages")
	}

	return &Summary{
		TotalColleges:    total,
		ApprovedColleges: approved,
		TotalStudents:    students,
		AvgPackage:       averagePackage(amounts),
	}, nil
}

// averagePackage keeps the arithmetic in decimal so the published figure
// does not drift with float rounding.
func averagePackage(amounts []types.PackageAmount) string {
	if len(amounts) == 0 {
		return "0"
	}
	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount.Decimal)
	}
	return sum.Div(decimal.NewFromInt(int64(len(amounts)))).Round(2).String()
}
