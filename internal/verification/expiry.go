package verification

import (
	"time"

	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// EffectiveApprovalStatus derives the approval status a reader should see
// without mutating the stored row. Terminal and pending statuses pass
// through; an ACTIVE approval degrades to EXPIRED once valid_until passes,
// and to EXPIRING_SOON inside the warning window before it.
func EffectiveApprovalStatus(stored enums.ApprovalStatus, validUntil *time.Time, now time.Time, warningWindow time.Duration) enums.ApprovalStatus {
	switch stored {
	case enums.ApprovalStatusRevoked, enums.ApprovalStatusRejected, enums.ApprovalStatusPending:
		return stored
	}

	if validUntil == nil {
		return stored
	}
	if !validUntil.After(now) {
		return enums.ApprovalStatusExpired
	}
	if warningWindow > 0 && validUntil.Sub(now) <= warningWindow {
		return enums.ApprovalStatusExpiringSoon
	}
	return enums.ApprovalStatusActive
}
