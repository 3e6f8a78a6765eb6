package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/api/middleware"
	"github.com/edusphere/edusphere-backend/api/responses"
	"github.com/edusphere/edusphere-backend/api/validators"
	"github.com/edusphere/edusphere-backend/internal/colleges"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/logger"
)

// CollegeSubmit files the college's detail record for review and locks it.
func CollegeSubmit(svc colleges.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "college service unavailable"))
			return
		}

		collegeID, err := subjectUUID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload colleges.SubmissionInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Submit(r.Context(), collegeID, payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "submitted"})
	}
}

// CollegeProfile returns the signed-in college's own record with details.
func CollegeProfile(svc colleges.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "college service unavailable"))
			return
		}

		collegeID, err := subjectUUID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		college, err := svc.Details(r.Context(), collegeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, college)
	}
}

func subjectUUID(r *http.Request) (uuid.UUID, error) {
	subject := middleware.SubjectIDFromContext(r.Context())
	if subject == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "subject context missing")
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subject id")
	}
	return id, nil
}
