package enums

import "fmt"

// ApprovalStatus is the secondary, time-sensitive validity state of a college.
// It only carries meaning while the college status is APPROVED; EXPIRING_SOON
// and EXPIRED are usually derived at read time rather than stored.
type ApprovalStatus string

const (
	ApprovalStatusPending      ApprovalStatus = "PENDING"
	ApprovalStatusActive       ApprovalStatus = "ACTIVE"
	ApprovalStatusExpiringSoon ApprovalStatus = "EXPIRING_SOON"
	ApprovalStatusExpired      ApprovalStatus = "EXPIRED"
	ApprovalStatusRevoked      ApprovalStatus = "REVOKED"
	ApprovalStatusRejected     ApprovalStatus = "REJECTED"
)

var validApprovalStatuses = []ApprovalStatus{
	ApprovalStatusPending,
	ApprovalStatusActive,
	ApprovalStatusExpiringSoon,
	ApprovalStatusExpired,
	ApprovalStatusRevoked,
	ApprovalStatusRejected,
}

// String implements fmt.Stringer.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the canonical approval_status enum.
func (s ApprovalStatus) IsValid() bool {
	for _, candidate := range validApprovalStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseApprovalStatus converts raw input into an ApprovalStatus.
func ParseApprovalStatus(value string) (ApprovalStatus, error) {
	for _, candidate := range validApprovalStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid approval status %q", value)
}
