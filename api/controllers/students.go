package controllers

import (
	"net/http"
	"strings"

	"github.com/edusphere/edusphere-backend/api/responses"
	"github.com/edusphere/edusphere-backend/api/validators"
	"github.com/edusphere/edusphere-backend/internal/students"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/logger"
	"github.com/edusphere/edusphere-backend/pkg/pagination"
)

// StudentProfileSave creates or replaces the signed-in student's profile.
func StudentProfileSave(svc students.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "student service unavailable"))
			return
		}

		studentID, err := subjectUUID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload students.ProfileInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SaveProfile(r.Context(), studentID, payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "saved"})
	}
}

// StudentProfile returns the signed-in student's record and profile.
func StudentProfile(svc students.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "student service unavailable"))
			return
		}

		studentID, err := subjectUUID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		student, err := svc.Profile(r.Context(), studentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, student)
	}
}

// BrowseColleges returns a filtered keyset page of verified colleges.
func BrowseColleges(svc students.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "student service unavailable"))
			return
		}

		query := r.URL.Query()
		filters := students.BrowseFilters{
			Country:  strings.TrimSpace(query.Get("country")),
			State:    strings.TrimSpace(query.Get("state")),
			District: strings.TrimSpace(query.Get("district")),
			Search:   strings.TrimSpace(query.Get("search")),
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(query.Get("cursor")),
		}

		result, err := svc.Browse(r.Context(), filters, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// BrowseCollegeDetail returns the public record for one verified college.
func BrowseCollegeDetail(svc students.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "student service unavailable"))
			return
		}

		collegeID, err := urlUUID(r, "collegeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.CollegeDetail(r.Context(), collegeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}
