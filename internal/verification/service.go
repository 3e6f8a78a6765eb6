package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/config"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/metrics"
)

type collegesRepository interface {
	ApplyAction(ctx context.Context, collegeID, officerID uuid.UUID, action enums.VerificationAction, remarks string, verifiedAt time.Time, decide DecideFunc) error
	PendingQueue(ctx context.Context) ([]models.College, error)
	ApprovedQueue(ctx context.Context, filters QueueFilters) ([]models.College, error)
	FindWithDetails(ctx context.Context, id uuid.UUID) (*models.College, error)
	Logs(ctx context.Context, collegeID uuid.UUID) ([]models.VerificationLog, error)
}

// Service exposes the officer verification surface: decisions, queues, and
// the audit trail.
type Service interface {
	Act(ctx context.Context, officerID uuid.UUID, input ActInput) error
	PendingQueue(ctx context.Context) ([]QueueItem, error)
	ApprovedQueue(ctx context.Context, filters QueueFilters) ([]QueueItem, error)
	FullDetails(ctx context.Context, collegeID uuid.UUID) (*CollegeDetails, error)
	Logs(ctx context.Context, collegeID uuid.UUID) ([]LogEntry, error)
}

type service struct {
	repo    collegesRepository
	cfg     config.VerificationConfig
	metrics *metrics.VerificationMetrics
	now     func() time.Time
}

// NewService builds the verification service.
func NewService(repo collegesRepository, cfg config.VerificationConfig, vm *metrics.VerificationMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("colleges repository required")
	}
	if cfg.ValidityMonths <= 0 {
		return nil, fmt.Errorf("approval validity months must be positive")
	}
	return &service{
		repo:    repo,
		cfg:     cfg,
		metrics: vm,
		now:     time.Now,
	}, nil
}

func (s *service) Act(ctx context.Context, officerID uuid.UUID, input ActInput) error {
	if officerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "officer identity missing")
	}
	if input.CollegeID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "college id is required")
	}
	if !input.Action.IsValid() {
		return pkgerrors.New(pkgerrors.CodeInvalidAction, "unknown verification action")
	}
	if input.Action.RequiresRemarks() && input.Remarks == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "remarks are mandatory for this action")
	}
	if input.Action == enums.ActionApprove && !input.Checklist.Complete() {
		return pkgerrors.New(pkgerrors.CodeValidation, "verification checklist must be fully affirmed before approval")
	}

	now := s.now()
	started := now
	err := s.repo.ApplyAction(ctx, input.CollegeID, officerID, input.Action, input.Remarks, now, func(college *models.College) (Transition, error) {
		return apply(StateOf(college), input.Action, now, s.cfg.ValidityMonths)
	})
	s.metrics.ObserveActionDuration(input.Action.String(), time.Since(started))

	if err != nil {
		var appErr *pkgerrors.Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.metrics.IncAction(input.Action.String(), "not_found")
			return pkgerrors.New(pkgerrors.CodeNotFound, "college not found")
		case errors.As(err, &appErr):
			if appErr.Code() == pkgerrors.CodeStateConflict {
				s.metrics.IncStateConflict()
			}
			s.metrics.IncAction(input.Action.String(), "rejected")
			return err
		default:
			s.metrics.IncAction(input.Action.String(), "error")
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply verification action")
		}
	}

	s.metrics.IncAction(input.Action.String(), "success")
	return nil
}

func (s *service) PendingQueue(ctx context.Context) ([]QueueItem, error) {
	rows, err := s.repo.PendingQueue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending colleges")
	}
	return s.annotate(rows), nil
}

func (s *service) ApprovedQueue(ctx context.Context, filters QueueFilters) ([]QueueItem, error) {
	rows, err := s.repo.ApprovedQueue(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list approved colleges")
	}
	return s.annotate(rows), nil
}

func (s *service) FullDetails(ctx context.Context, collegeID uuid.UUID) (*CollegeDetails, error) {
	if collegeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "college id is required")
	}

	college, err := s.repo.FindWithDetails(ctx, collegeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "college not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup college")
	}
	college.PasswordHash = ""

	logs, err := s.Logs(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	return &CollegeDetails{
		College:        college,
		ApprovalStatus: s.effective(college.ApprovalStatus, college.ValidUntil),
		Logs:           logs,
	}, nil
}

func (s *service) Logs(ctx context.Context, collegeID uuid.UUID) ([]LogEntry, error) {
	if collegeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "college id is required")
	}
	rows, err := s.repo.Logs(ctx, collegeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list verification logs")
	}
	return toLogEntries(rows), nil
}

func (s *service) annotate(rows []models.College) []QueueItem {
	items := make([]QueueItem, len(rows))
	for i, row := range rows {
		items[i] = toQueueItem(row, s.effective(row.ApprovalStatus, row.ValidUntil))
	}
	return items
}

func (s *service) effective(stored enums.ApprovalStatus, validUntil *time.Time) enums.ApprovalStatus {
	return EffectiveApprovalStatus(stored, validUntil, s.now(), s.cfg.ExpiryWarningWindow())
}
