package colleges

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

type stubSubmissionsRepo struct {
	submitErr  error
	lastRecord *SubmissionRecord
	college    *models.College
	findErr    error
}

func (s *stubSubmissionsRepo) Submit(_ context.Context, _ uuid.UUID, record SubmissionRecord, _ time.Time) error {
	if s.submitErr != nil {
		return s.submitErr
	}
	s.lastRecord = &record
	return nil
}

func (s *stubSubmissionsRepo) FindWithDetails(_ context.Context, _ uuid.UUID) (*models.College, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.college, nil
}

func (s *stubSubmissionsRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.College, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.college, nil
}

func newTestService(t *testing.T, repo *stubSubmissionsRepo) Service {
	t.Helper()
	svc, err := NewService(repo, nil)
	require.NoError(t, err)
	return svc
}

func validSubmission() SubmissionInput {
	return SubmissionInput{
		CoursesOffered: []string{"B.Tech CSE", "B.Tech ECE"},
		IntakeCapacity: 240,
		Accreditation:  "NAAC A+",
		Faculty: []FacultyInput{
			{Name: "Dr. Rao", Designation: "Professor", Qualification: "PhD", ExperienceYears: 12, Department: "CSE"},
		},
		Placement: PlacementInput{
			PlacementPercentage: 84.5,
			AvgPackage:          "6.5",
			MaxPackage:          "24",
			CompaniesVisited:    []string{"Infosys", "TCS"},
		},
		Documents: map[string]string{
			"aicte_approval":  "https://docs.example.com/aicte.pdf",
			"placement_proof": "https://docs.example.com/placements.pdf",
			"naac_certificate": "",
		},
	}
}

func TestSubmitBuildsRecord(t *testing.T) {
	repo := &stubSubmissionsRepo{}
	svc := newTestService(t, repo)

	err := svc.Submit(context.Background(), uuid.New(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, repo.lastRecord)

	assert.Equal(t, 240, repo.lastRecord.Academic.IntakeCapacity)
	assert.Len(t, repo.lastRecord.Faculty, 1)
	assert.Equal(t, "6.5", repo.lastRecord.Placement.AvgPackage.String())
	assert.Equal(t, "https://docs.example.com/placements.pdf", repo.lastRecord.Placement.ProofURL)
}

func TestSubmitDropsBlankDocuments(t *testing.T) {
	repo := &stubSubmissionsRepo{}
	svc := newTestService(t, repo)

	err := svc.Submit(context.Background(), uuid.New(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, repo.lastRecord)

	assert.Len(t, repo.lastRecord.Documents, 2)
	for _, doc := range repo.lastRecord.Documents {
		assert.NotEmpty(t, doc.URL)
		assert.NotEqual(t, "naac_certificate", doc.Type)
	}
}

func TestSubmitRejectsBadPackageAmount(t *testing.T) {
	repo := &stubSubmissionsRepo{}
	svc := newTestService(t, repo)

	input := validSubmission()
	input.Placement.AvgPackage = "not-a-number"

	err := svc.Submit(context.Background(), uuid.New(), input)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Nil(t, repo.lastRecord)
}

func TestSubmitPassesThroughLockedError(t *testing.T) {
	repo := &stubSubmissionsRepo{
		submitErr: pkgerrors.New(pkgerrors.CodeLocked, "record is locked pending verification"),
	}
	svc := newTestService(t, repo)

	err := svc.Submit(context.Background(), uuid.New(), validSubmission())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeLocked, appErr.Code())
}

func TestSubmitUnknownCollege(t *testing.T) {
	repo := &stubSubmissionsRepo{submitErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	err := svc.Submit(context.Background(), uuid.New(), validSubmission())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestDetailsStripsPasswordHash(t *testing.T) {
	repo := &stubSubmissionsRepo{
		college: &models.College{
			ID:           uuid.New(),
			Name:         "Govt Engineering College",
			PasswordHash: "argon2id$secret",
			Status:       enums.CollegeStatusPending,
		},
	}
	svc := newTestService(t, repo)

	college, err := svc.Details(context.Background(), repo.college.ID)
	require.NoError(t, err)
	assert.Empty(t, college.PasswordHash)
	assert.Equal(t, "Govt Engineering College", college.Name)
}

func TestDetailsNotFound(t *testing.T) {
	repo := &stubSubmissionsRepo{findErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo)

	_, err := svc.Details(context.Background(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
