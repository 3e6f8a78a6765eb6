package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/api/middleware"
	"github.com/edusphere/edusphere-backend/internal/verification"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

type stubVerificationService struct {
	actErr      error
	pending     []verification.QueueItem
	approved    []verification.QueueItem
	details     *verification.CollegeDetails
	logs        []verification.LogEntry
	err         error
	lastOfficer uuid.UUID
	lastInput   verification.ActInput
	lastFilters verification.QueueFilters
}

func (s *stubVerificationService) Act(ctx context.Context, officerID uuid.UUID, input verification.ActInput) error {
	s.lastOfficer = officerID
	s.lastInput = input
	return s.actErr
}

func (s *stubVerificationService) PendingQueue(ctx context.Context) ([]verification.QueueItem, error) {
	return s.pending, s.err
}

func (s *stubVerificationService) ApprovedQueue(ctx context.Context, filters verification.QueueFilters) ([]verification.QueueItem, error) {
	s.lastFilters = filters
	return s.approved, s.err
}

func (s *stubVerificationService) FullDetails(ctx context.Context, collegeID uuid.UUID) (*verification.CollegeDetails, error) {
	return s.details, s.err
}

func (s *stubVerificationService) Logs(ctx context.Context, collegeID uuid.UUID) ([]verification.LogEntry, error) {
	return s.logs, s.err
}

func govRequest(t *testing.T, method, target string, body []byte, collegeID uuid.UUID) *http.Request {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("collegeId", collegeID.String())
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = middleware.WithSubjectID(ctx, uuid.New().String())
	return req.WithContext(ctx)
}

func TestGovVerifyActionApprove(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubVerificationService{}
	handler := GovVerifyAction(svc, nil)

	payload := []byte(`{
		"action": "APPROVE",
		"checklist": {"registration": true, "address": true, "accreditation": true, "courses": true, "contact": true}
	}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, govRequest(t, http.MethodPost, "/api/v1/gov/colleges/"+collegeID.String()+"/action", payload, collegeID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.CollegeID != collegeID {
		t.Fatalf("expected college %s got %s", collegeID, svc.lastInput.CollegeID)
	}
	if svc.lastInput.Action != enums.ActionApprove {
		t.Fatalf("expected approve got %s", svc.lastInput.Action)
	}
	if !svc.lastInput.Checklist.Complete() {
		t.Fatal("expected complete checklist")
	}
}

func TestGovVerifyActionLowercaseAccepted(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubVerificationService{}
	handler := GovVerifyAction(svc, nil)

	payload := []byte(`{"action": "reject", "remarks": "forged accreditation"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, govRequest(t, http.MethodPost, "/api/v1/gov/colleges/"+collegeID.String()+"/action", payload, collegeID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastInput.Action != enums.ActionReject {
		t.Fatalf("expected reject got %s", svc.lastInput.Action)
	}
	if svc.lastInput.Remarks != "forged accreditation" {
		t.Fatalf("unexpected remarks %q", svc.lastInput.Remarks)
	}
}

func TestGovVerifyActionUnknownAction(t *testing.T) {
	collegeID := uuid.New()
	handler := GovVerifyAction(&stubVerificationService{}, nil)

	payload := []byte(`{"action": "ESCALATE"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, govRequest(t, http.MethodPost, "/api/v1/gov/colleges/"+collegeID.String()+"/action", payload, collegeID))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGovVerifyActionStateConflict(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubVerificationService{actErr: pkgerrors.New(pkgerrors.CodeStateConflict, "record is not pending review")}
	handler := GovVerifyAction(svc, nil)

	payload := []byte(`{"action": "APPROVE", "checklist": {"registration": true, "address": true, "accreditation": true, "courses": true, "contact": true}}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, govRequest(t, http.MethodPost, "/api/v1/gov/colleges/"+collegeID.String()+"/action", payload, collegeID))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rec.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeStateConflict) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestGovApprovedQueuePassesFilters(t *testing.T) {
	svc := &stubVerificationService{approved: []verification.QueueItem{{ID: uuid.New(), Name: "GEC"}}}
	handler := GovApprovedQueue(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gov/colleges/approved?state=Kerala&type=Government&search=engineering", nil)
	req = req.WithContext(middleware.WithSubjectID(req.Context(), uuid.New().String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastFilters.State != "Kerala" || svc.lastFilters.Type != "Government" || svc.lastFilters.Search != "engineering" {
		t.Fatalf("unexpected filters %+v", svc.lastFilters)
	}
}

func TestGovCollegeDetailsInvalidID(t *testing.T) {
	handler := GovCollegeDetails(&stubVerificationService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gov/colleges/not-a-uuid", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("collegeId", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGovVerificationLogs(t *testing.T) {
	collegeID := uuid.New()
	svc := &stubVerificationService{logs: []verification.LogEntry{
		{ID: uuid.New(), Action: enums.ActionApprove, OfficerName: "A. Menon"},
	}}
	handler := GovVerificationLogs(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, govRequest(t, http.MethodGet, "/api/v1/gov/colleges/"+collegeID.String()+"/logs", nil, collegeID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data []verification.LogEntry `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].OfficerName != "A. Menon" {
		t.Fatalf("unexpected logs %+v", envelope.Data)
	}
}
