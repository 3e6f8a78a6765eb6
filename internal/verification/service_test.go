package verification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/config"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

type stubCollegesRepo struct {
	college     *models.College
	applyErr    error
	lastAction  enums.VerificationAction
	lastRemarks string
	applied     *Transition
	pendingRows []models.College
	pendingErr  error
	approved    []models.College
	approvedErr error
	lastFilters QueueFilters
	logs        []models.VerificationLog
	logsErr     error
}

func (s *stubCollegesRepo) ApplyAction(ctx context.Context, collegeID, officerID uuid.UUID, action enums.VerificationAction, remarks string, verifiedAt time.Time, decide DecideFunc) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	if s.college == nil {
		return gorm.ErrRecordNotFound
	}
	s.lastAction = action
	s.lastRemarks = remarks
	transition, err := decide(s.college)
	if err != nil {
		return err
	}
	s.applied = &transition
	return nil
}

func (s *stubCollegesRepo) PendingQueue(ctx context.Context) ([]models.College, error) {
	return s.pendingRows, s.pendingErr
}

func (s *stubCollegesRepo) ApprovedQueue(ctx context.Context, filters QueueFilters) ([]models.College, error) {
	s.lastFilters = filters
	return s.approved, s.approvedErr
}

func (s *stubCollegesRepo) FindWithDetails(ctx context.Context, id uuid.UUID) (*models.College, error) {
	if s.college == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.college, nil
}

func (s *stubCollegesRepo) Logs(ctx context.Context, collegeID uuid.UUID) ([]models.VerificationLog, error) {
	return s.logs, s.logsErr
}

func newTestService(t *testing.T, repo *stubCollegesRepo) *service {
	t.Helper()
	svc, err := NewService(repo, config.VerificationConfig{ValidityMonths: 6, ExpiryWarningDays: 30}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc.(*service)
}

func fullChecklist() Checklist {
	return Checklist{Registration: true, Address: true, Accreditation: true, Courses: true, Contact: true}
}

func pendingCollege() *models.College {
	return &models.College{
		ID:             uuid.New(),
		Status:         enums.CollegeStatusPending,
		ApprovalStatus: enums.ApprovalStatusPending,
		IsLocked:       true,
	}
}

func TestActApproveHappyPath(t *testing.T) {
	repo := &stubCollegesRepo{college: pendingCollege()}
	svc := newTestService(t, repo)

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: repo.college.ID,
		Action:    enums.ActionApprove,
		Checklist: fullChecklist(),
	})
	if err != nil {
		t.Fatalf("act: %v", err)
	}

	if repo.applied == nil {
		t.Fatal("expected transition to be applied")
	}
	if repo.applied.Status != enums.CollegeStatusApproved {
		t.Fatalf("expected APPROVED, got %s", repo.applied.Status)
	}
	if repo.applied.ValidUntil == nil || repo.applied.ApprovedAt == nil {
		t.Fatal("expected approval window to be set")
	}
	if !repo.applied.Locked {
		t.Fatal("expected record to stay locked")
	}
}

func TestActRejectRequiresRemarks(t *testing.T) {
	repo := &stubCollegesRepo{college: pendingCollege()}
	svc := newTestService(t, repo)

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: repo.college.ID,
		Action:    enums.ActionReject,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.applied != nil {
		t.Fatal("expected no transition on validation failure")
	}
}

func TestActApproveRequiresFullChecklist(t *testing.T) {
	repo := &stubCollegesRepo{college: pendingCollege()}
	svc := newTestService(t, repo)

	partial := fullChecklist()
	partial.Accreditation = false

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: repo.college.ID,
		Action:    enums.ActionApprove,
		Checklist: partial,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestActUnknownAction(t *testing.T) {
	repo := &stubCollegesRepo{college: pendingCollege()}
	svc := newTestService(t, repo)

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: repo.college.ID,
		Action:    enums.VerificationAction("ESCALATE"),
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeInvalidAction {
		t.Fatalf("expected invalid action error, got %v", err)
	}
}

func TestActRenewGuardedToApproved(t *testing.T) {
	repo := &stubCollegesRepo{college: pendingCollege()}
	svc := newTestService(t, repo)

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: repo.college.ID,
		Action:    enums.ActionRenew,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestActRevokeFromApproved(t *testing.T) {
	until := time.Now().AddDate(0, 3, 0)
	repo := &stubCollegesRepo{college: &models.College{
		ID:             uuid.New(),
		Status:         enums.CollegeStatusApproved,
		ApprovalStatus: enums.ApprovalStatusActive,
		ValidUntil:     &until,
		IsLocked:       true,
	}}
	svc := newTestService(t, repo)

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: repo.college.ID,
		Action:    enums.ActionRevoke,
		Remarks:   "accreditation withdrawn by AICTE",
	})
	if err != nil {
		t.Fatalf("act: %v", err)
	}
	if repo.applied.ApprovalStatus != enums.ApprovalStatusRevoked {
		t.Fatalf("expected REVOKED, got %s", repo.applied.ApprovalStatus)
	}
	if repo.applied.ValidUntil == nil {
		t.Fatal("expected valid_until cut to now")
	}
	if repo.lastRemarks != "accreditation withdrawn by AICTE" {
		t.Fatalf("remarks not forwarded, got %q", repo.lastRemarks)
	}
}

func TestActCollegeNotFound(t *testing.T) {
	repo := &stubCollegesRepo{}
	svc := newTestService(t, repo)

	err := svc.Act(context.Background(), uuid.New(), ActInput{
		CollegeID: uuid.New(),
		Action:    enums.ActionApprove,
		Checklist: fullChecklist(),
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApprovedQueueAnnotatesEffectiveStatus(t *testing.T) {
	expired := time.Now().AddDate(0, 0, -2)
	expiring := time.Now().AddDate(0, 0, 10)
	active := time.Now().AddDate(0, 5, 0)

	repo := &stubCollegesRepo{approved: []models.College{
		{ID: uuid.New(), Name: "A", Status: enums.CollegeStatusApproved, ApprovalStatus: enums.ApprovalStatusActive, ValidUntil: &expired},
		{ID: uuid.New(), Name: "B", Status: enums.CollegeStatusApproved, ApprovalStatus: enums.ApprovalStatusActive, ValidUntil: &expiring},
		{ID: uuid.New(), Name: "C", Status: enums.CollegeStatusApproved, ApprovalStatus: enums.ApprovalStatusActive, ValidUntil: &active},
	}}
	svc := newTestService(t, repo)

	items, err := svc.ApprovedQueue(context.Background(), QueueFilters{State: "Karnataka"})
	if err != nil {
		t.Fatalf("approved queue: %v", err)
	}
	if repo.lastFilters.State != "Karnataka" {
		t.Fatalf("filters not forwarded: %+v", repo.lastFilters)
	}
	if items[0].ApprovalStatus != enums.ApprovalStatusExpired {
		t.Fatalf("expected EXPIRED, got %s", items[0].ApprovalStatus)
	}
	if items[1].ApprovalStatus != enums.ApprovalStatusExpiringSoon {
		t.Fatalf("expected EXPIRING_SOON, got %s", items[1].ApprovalStatus)
	}
	if items[2].ApprovalStatus != enums.ApprovalStatusActive {
		t.Fatalf("expected ACTIVE, got %s", items[2].ApprovalStatus)
	}
}

func TestFullDetailsStripsPasswordHash(t *testing.T) {
	officer := models.GovernmentUser{ID: uuid.New(), Name: "R. Sharma"}
	repo := &stubCollegesRepo{
		college: &models.College{
			ID:           uuid.New(),
			Status:       enums.CollegeStatusPending,
			PasswordHash: "secret-hash",
		},
		logs: []models.VerificationLog{
			{ID: uuid.New(), Action: enums.ActionRequestCorrection, Remarks: "address proof missing", Officer: &officer},
		},
	}
	svc := newTestService(t, repo)

	details, err := svc.FullDetails(context.Background(), repo.college.ID)
	if err != nil {
		t.Fatalf("full details: %v", err)
	}
	if details.College.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if len(details.Logs) != 1 || details.Logs[0].OfficerName != "R. Sharma" {
		t.Fatalf("officer name not joined: %+v", details.Logs)
	}
}
