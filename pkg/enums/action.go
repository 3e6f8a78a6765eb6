package enums

import "fmt"

// VerificationAction names an officer decision on a college record.
type VerificationAction string

const (
	ActionApprove           VerificationAction = "APPROVE"
	ActionReject            VerificationAction = "REJECT"
	ActionRequestCorrection VerificationAction = "REQUEST_CORRECTION"
	ActionRenew             VerificationAction = "RENEW"
	ActionRevoke            VerificationAction = "REVOKE"
)

var validVerificationActions = []VerificationAction{
	ActionApprove,
	ActionReject,
	ActionRequestCorrection,
	ActionRenew,
	ActionRevoke,
}

// String implements fmt.Stringer.
func (a VerificationAction) String() string {
	return string(a)
}

// IsValid reports whether the value is a known VerificationAction.
func (a VerificationAction) IsValid() bool {
	for _, candidate := range validVerificationActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// RequiresRemarks reports whether the action cannot be taken without an
// officer note.
func (a VerificationAction) RequiresRemarks() bool {
	switch a {
	case ActionReject, ActionRequestCorrection, ActionRevoke:
		return true
	}
	return false
}

// ParseVerificationAction converts raw input into a VerificationAction.
func ParseVerificationAction(value string) (VerificationAction, error) {
	for _, candidate := range validVerificationActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid verification action %q", value)
}
