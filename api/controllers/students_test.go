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
	"github.com/edusphere/edusphere-backend/internal/students"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/pagination"
)

type stubStudentService struct {
	saveErr    error
	student    *models.Student
	browse     *students.BrowseResult
	detail     *students.CollegeDetail
	err        error
	lastID     uuid.UUID
	lastInput  students.ProfileInput
	lastFilter students.BrowseFilters
	lastParams pagination.Params
}

func (s *stubStudentService) SaveProfile(ctx context.Context, studentID uuid.UUID, input students.ProfileInput) error {
	s.lastID = studentID
	s.lastInput = input
	return s.saveErr
}

func (s *stubStudentService) Profile(ctx context.Context, studentID uuid.UUID) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) Browse(ctx context.Context, filters students.BrowseFilters, params pagination.Params) (*students.BrowseResult, error) {
	s.lastFilter = filters
	s.lastParams = params
	return s.browse, s.err
}

func (s *stubStudentService) CollegeDetail(ctx context.Context, collegeID uuid.UUID) (*students.CollegeDetail, error) {
	return s.detail, s.err
}

func TestStudentProfileSaveSuccess(t *testing.T) {
	studentID := uuid.New()
	svc := &stubStudentService{}
	handler := StudentProfileSave(svc, nil)

	body := []byte(`{
		"full_name": "Anita Kumar",
		"email": "anita@example.com",
		"country": "India",
		"state": "Kerala",
		"district": "Kochi",
		"education_level": "12th"
	}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/students/me/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithSubjectID(req.Context(), studentID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastID != studentID {
		t.Fatalf("expected student %s got %s", studentID, svc.lastID)
	}
	if svc.lastInput.FullName != "Anita Kumar" {
		t.Fatalf("unexpected name %q", svc.lastInput.FullName)
	}
}

func TestStudentProfileSaveMissingFields(t *testing.T) {
	handler := StudentProfileSave(&stubStudentService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/students/me/profile", bytes.NewReader([]byte(`{"full_name": "Anita"}`)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithSubjectID(req.Context(), uuid.New().String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestBrowseCollegesPassesFiltersAndPagination(t *testing.T) {
	svc := &stubStudentService{browse: &students.BrowseResult{
		Colleges:   []students.CollegeSummary{{ID: uuid.New(), Name: "GEC", ApprovalStatus: enums.ApprovalStatusActive}},
		NextCursor: "cursor-1",
	}}
	handler := BrowseColleges(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/colleges?state=Kerala&search=engineering&limit=5&cursor=abc", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastFilter.State != "Kerala" || svc.lastFilter.Search != "engineering" {
		t.Fatalf("unexpected filters %+v", svc.lastFilter)
	}
	if svc.lastParams.Limit != 5 || svc.lastParams.Cursor != "abc" {
		t.Fatalf("unexpected params %+v", svc.lastParams)
	}
	var envelope struct {
		Data students.BrowseResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.NextCursor != "cursor-1" {
		t.Fatalf("unexpected cursor %q", envelope.Data.NextCursor)
	}
}

func TestBrowseCollegesRejectsBadLimit(t *testing.T) {
	handler := BrowseColleges(&stubStudentService{browse: &students.BrowseResult{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/colleges?limit=abc", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestBrowseCollegeDetailHidden(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubStudentService{err: pkgerrors.New(pkgerrors.CodeNotFound, "college not found")}
	handler := BrowseCollegeDetail(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, govRequest(t, http.MethodGet, "/api/v1/colleges/"+collegeID.String(), nil, collegeID))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
