package verification

import (
	"time"

	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

// CollegeState is the closed set of verification states a college can be in.
// The database stores it spread across status, is_locked, and the approval
// columns; this type keeps the transition logic in one place.
type CollegeState interface {
	isCollegeState()
}

// Pending means the college has submitted and is waiting for an officer.
type Pending struct{}

// CorrectionRequired means an officer sent the record back and the
// submission form is unlocked.
type CorrectionRequired struct{}

// Approved means the college is verified until ValidUntil.
type Approved struct {
	ValidUntil time.Time
}

// Rejected is terminal for the current submission. Revoked distinguishes an
// approval that was withdrawn from a plain rejection.
type Rejected struct {
	Revoked bool
}

func (Pending) isCollegeState()            {}
func (CorrectionRequired) isCollegeState() {}
func (Approved) isCollegeState()           {}
func (Rejected) isCollegeState()           {}

// StateOf maps the stored columns back onto the sum type.
func StateOf(college *models.College) CollegeState {
	switch college.Status {
	case enums.CollegeStatusApproved:
		var until time.Time
		if college.ValidUntil != nil {
			until = *college.ValidUntil
		}
		return Approved{ValidUntil: until}
	case enums.CollegeStatusRejected:
		return Rejected{Revoked: college.ApprovalStatus == enums.ApprovalStatusRevoked}
	case enums.CollegeStatusCorrectionRequired:
		return CorrectionRequired{}
	default:
		return Pending{}
	}
}

// Transition is the set of column updates an accepted action produces.
type Transition struct {
	Status         enums.CollegeStatus
	Locked         bool
	ApprovalStatus enums.ApprovalStatus
	ApprovedAt     *time.Time
	ValidUntil     *time.Time
}

// apply runs the state machine: given the current state and an action it
// either returns the resulting transition or a state conflict. APPROVE,
// REJECT, and REQUEST_CORRECTION act on records awaiting review; RENEW and
// REVOKE act only on approved records.
func apply(state CollegeState, action enums.VerificationAction, now time.Time, validityMonths int) (Transition, error) {
	switch action {
	case enums.ActionApprove, enums.ActionReject, enums.ActionRequestCorrection:
		switch state.(type) {
		case Pending, CorrectionRequired:
		default:
			return Transition{}, pkgerrors.New(pkgerrors.CodeStateConflict, "college is not awaiting review")
		}
	case enums.ActionRenew, enums.ActionRevoke:
		if _, ok := state.(Approved); !ok {
			return Transition{}, pkgerrors.New(pkgerrors.CodeStateConflict, "only approved colleges can be renewed or revoked")
		}
	default:
		return Transition{}, pkgerrors.New(pkgerrors.CodeInvalidAction, "unknown verification action")
	}

	switch action {
	case enums.ActionApprove, enums.ActionRenew:
		approvedAt := now
		validUntil := now.AddDate(0, validityMonths, 0)
		return Transition{
			Status:         enums.CollegeStatusApproved,
			Locked:         true,
			ApprovalStatus: enums.ApprovalStatusActive,
			ApprovedAt:     &approvedAt,
			ValidUntil:     &validUntil,
		}, nil
	case enums.ActionReject:
		return Transition{
			Status:         enums.CollegeStatusRejected,
			Locked:         true,
			ApprovalStatus: enums.ApprovalStatusRejected,
		}, nil
	case enums.ActionRevoke:
		revokedAt := now
		return Transition{
			Status:         enums.CollegeStatusRejected,
			Locked:         true,
			ApprovalStatus: enums.ApprovalStatusRevoked,
			ValidUntil:     &revokedAt,
		}, nil
	default: // REQUEST_CORRECTION
		return Transition{
			Status:         enums.CollegeStatusCorrectionRequired,
			Locked:         false,
			ApprovalStatus: enums.ApprovalStatusPending,
		}, nil
	}
}
