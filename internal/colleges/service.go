package colleges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db/models"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/metrics"
	"github.com/edusphere/edusphere-backend/pkg/types"
)

type submissionsRepository interface {
	Submit(ctx context.Context, collegeID uuid.UUID, record SubmissionRecord, submittedAt time.Time) error
	FindWithDetails(ctx context.Context, id uuid.UUID) (*models.College, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.College, error)
}

// Service exposes the college-facing surface: data submission and the
// dashboard view of the college's own record.
type Service interface {
	Submit(ctx context.Context, collegeID uuid.UUID, input SubmissionInput) error
	Details(ctx context.Context, collegeID uuid.UUID) (*models.College, error)
}

type service struct {
	repo    submissionsRepository
	metrics *metrics.VerificationMetrics
	now     func() time.Time
}

// NewService builds the college submission service.
func NewService(repo submissionsRepository, vm *metrics.VerificationMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("submissions repository required")
	}
	return &service{
		repo:    repo,
		metrics: vm,
		now:     time.Now,
	}, nil
}

func (s *service) Submit(ctx context.Context, collegeID uuid.UUID, input SubmissionInput) error {
	if collegeID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "college identity missing")
	}

	record, err := buildRecord(collegeID, input)
	if err != nil {
		s.metrics.IncSubmission("invalid")
		return err
	}

	if err := s.repo.Submit(ctx, collegeID, record, s.now()); err != nil {
		var appErr *pkgerrors.Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.metrics.IncSubmission("not_found")
			return pkgerrors.New(pkgerrors.CodeNotFound, "college not found")
		case errors.As(err, &appErr):
			s.metrics.IncSubmission("locked")
			return err
		default:
			s.metrics.IncSubmission("error")
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist submission")
		}
	}

	s.metrics.IncSubmission("success")
	return nil
}

func (s *service) Details(ctx context.Context, collegeID uuid.UUID) (*models.College, error) {
	if collegeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "college identity missing")
	}

	college, err := s.repo.FindWithDetails(ctx, collegeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "college not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup college")
	}
	college.PasswordHash = ""
	return college, nil
}

// buildRecord converts the validated form input into persistence rows.
// Documents with an empty URL are dropped rather than stored as blanks.
func buildRecord(collegeID uuid.UUID, input SubmissionInput) (SubmissionRecord, error) {
	avg, err := types.NewPackageAmount(input.Placement.AvgPackage)
	if err != nil {
		return SubmissionRecord{}, pkgerrors.New(pkgerrors.CodeValidation, "avg_package must be a non-negative amount")
	}
	max, err := types.NewPackageAmount(input.Placement.MaxPackage)
	if err != nil {
		return SubmissionRecord{}, pkgerrors.New(pkgerrors.CodeValidation, "max_package must be a non-negative amount")
	}

	record := SubmissionRecord{
		Academic: models.AcademicDetail{
			CoursesOffered: pq.StringArray(input.CoursesOffered),
			FeesPerCourse:  input.FeesPerCourse,
			IntakeCapacity: input.IntakeCapacity,
			Accreditation:  input.Accreditation,
		},
		Placement: models.PlacementDetail{
			PlacementPercentage: input.Placement.PlacementPercentage,
			AvgPackage:          avg,
			MaxPackage:          max,
			CompaniesVisited:    pq.StringArray(input.Placement.CompaniesVisited),
			ProofURL:            input.Documents["placement_proof"],
		},
	}

	for _, f := range input.Faculty {
		record.Faculty = append(record.Faculty, models.Faculty{
			ID:              uuid.New(),
			CollegeID:       collegeID,
			Name:            f.Name,
			Designation:     f.Designation,
			Qualification:   f.Qualification,
			ExperienceYears: f.ExperienceYears,
			Department:      f.Department,
		})
	}

	for docType, url := range input.Documents {
		if url == "" {
			continue
		}
		record.Documents = append(record.Documents, models.Document{
			ID:        uuid.New(),
			CollegeID: collegeID,
			Type:      docType,
			URL:       url,
		})
	}

	return record, nil
}
