package students

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/internal/verification"
	"github.com/edusphere/edusphere-backend/pkg/config"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/pagination"
)

type studentsRepository interface {
	UpsertProfile(ctx context.Context, studentID uuid.UUID, profile models.StudentProfile) error
	FindStudent(ctx context.Context, studentID uuid.UUID) (*models.Student, error)
	ListApproved(ctx context.Context, filters BrowseFilters, params pagination.Params, now time.Time) (*ApprovedPage, error)
	FindApprovedWithDetails(ctx context.Context, id uuid.UUID) (*models.College, error)
}

// Service is the student surface: profile upkeep and browsing approved
// colleges.
type Service interface {
	SaveProfile(ctx context.Context, studentID uuid.UUID, input ProfileInput) error
	Profile(ctx context.Context, studentID uuid.UUID) (*models.Student, error)
	Browse(ctx context.Context, filters BrowseFilters, params pagination.Params) (*BrowseResult, error)
	CollegeDetail(ctx context.Context, collegeID uuid.UUID) (*CollegeDetail, error)
}

type service struct {
	repo studentsRepository
	cfg  config.VerificationConfig
	now  func() time.Time
}

// NewService builds the student service.
func NewService(repo studentsRepository, cfg config.VerificationConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("students repository required")
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}, nil
}

func (s *service) SaveProfile(ctx context.Context, studentID uuid.UUID, input ProfileInput) error {
	if studentID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "student identity missing")
	}

	profile := models.StudentProfile{
		FullName:       input.FullName,
		Email:          input.Email,
		Country:        input.Country,
		State:          input.State,
		District:       input.District,
		EducationLevel: input.EducationLevel,
	}
	if err := s.repo.UpsertProfile(ctx, studentID, profile); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save profile")
	}
	return nil
}

func (s *service) Profile(ctx context.Context, studentID uuid.UUID) (*models.Student, error) {
	if studentID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "student identity missing")
	}

	student, err := s.repo.FindStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "student not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup student")
	}
	student.OTPHash = nil
	return student, nil
}

func (s *service) Browse(ctx context.Context, filters BrowseFilters, params pagination.Params) (*BrowseResult, error) {
	page, err := s.repo.ListApproved(ctx, filters, params, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list approved colleges")
	}

	summaries := make([]CollegeSummary, 0, len(page.Colleges))
	for _, college := range page.Colleges {
		summaries = append(summaries, toSummary(college, s.effective(college)))
	}
	return &BrowseResult{
		Colleges:   summaries,
		NextCursor: page.NextCursor,
	}, nil
}

// CollegeDetail returns the public view of one college. Anything that is
// not currently approved, including lapsed approvals, reads as not found.
func (s *service) CollegeDetail(ctx context.Context, collegeID uuid.UUID) (*CollegeDetail, error) {
	if collegeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "college id is required")
	}

	college, err := s.repo.FindApprovedWithDetails(ctx, collegeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "college not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup college")
	}

	effective := s.effective(*college)
	if effective == enums.ApprovalStatusExpired {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "college not found")
	}

	college.PasswordHash = ""
	return &CollegeDetail{
		College:        college,
		ApprovalStatus: effective,
	}, nil
}

func (s *service) effective(college models.College) enums.ApprovalStatus {
	return verification.EffectiveApprovalStatus(college.ApprovalStatus, college.ValidUntil, s.now(), s.cfg.ExpiryWarningWindow())
}
