package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/api/middleware"
	"github.com/edusphere/edusphere-backend/internal/colleges"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

type stubCollegeService struct {
	submitErr  error
	college    *models.College
	detailsErr error

	lastCollegeID uuid.UUID
	lastInput     colleges.SubmissionInput
}

func (s *stubCollegeService) Submit(ctx context.Context, collegeID uuid.UUID, input colleges.SubmissionInput) error {
	s.lastCollegeID = collegeID
	s.lastInput = input
	return s.submitErr
}

func (s *stubCollegeService) Details(ctx context.Context, collegeID uuid.UUID) (*models.College, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	return s.college, nil
}

func submissionPayload() []byte {
	return []byte(`{
		"courses_offered": ["BSc CS"],
		"fees_per_course": [{"course": "BSc CS", "fee": "45000"}],
		"intake_capacity": 120,
		"accreditation": "NAAC A",
		"faculty": [{"name": "Dr. Rao", "designation": "Professor", "qualification": "PhD", "experience_years": 12, "department": "CS"}],
		"placement": {"placement_percentage": 81.5, "avg_package": "6.5", "max_package": "24", "companies_visited": ["Infosys"]},
		"documents": {"affiliation_certificate": "https://docs.example.com/aff.pdf"}
	}`)
}

func TestCollegeSubmitSuccess(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubCollegeService{}
	handler := CollegeSubmit(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/colleges/me/submission", bytes.NewReader(submissionPayload()))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithSubjectID(req.Context(), collegeID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastCollegeID != collegeID {
		t.Fatalf("expected college %s got %s", collegeID, svc.lastCollegeID)
	}
	if len(svc.lastInput.CoursesOffered) != 1 || svc.lastInput.CoursesOffered[0] != "BSc CS" {
		t.Fatalf("unexpected courses: %v", svc.lastInput.CoursesOffered)
	}
}

func TestCollegeSubmitLocked(t *testing.T) {
	svc := &stubCollegeService{submitErr: pkgerrors.New(pkgerrors.CodeLocked, "record is locked for review")}
	handler := CollegeSubmit(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/colleges/me/submission", bytes.NewReader(submissionPayload()))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithSubjectID(req.Context(), uuid.New().String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeLocked) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestCollegeSubmitMissingContext(t *testing.T) {
	handler := CollegeSubmit(&stubCollegeService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/colleges/me/submission", bytes.NewReader(submissionPayload()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestCollegeSubmitRejectsUnknownFields(t *testing.T) {
	handler := CollegeSubmit(&stubCollegeService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/colleges/me/submission", bytes.NewReader([]byte(`{"bogus": true}`)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithSubjectID(req.Context(), uuid.New().String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCollegeProfileSuccess(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubCollegeService{college: &models.College{
		ID:     collegeID,
		Name:   "Government Engineering College",
		Code:   "GEC-001",
		Status: enums.CollegeStatusPending,
	}}
	handler := CollegeProfile(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/colleges/me", nil)
	req = req.WithContext(middleware.WithSubjectID(req.Context(), collegeID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data models.College `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != collegeID {
		t.Fatalf("expected id %s got %s", collegeID, envelope.Data.ID)
	}
}
