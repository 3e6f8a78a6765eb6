package enums

import "fmt"

// CollegeStatus is the primary verification state of a college record.
type CollegeStatus string

const (
	CollegeStatusPending            CollegeStatus = "PENDING"
	CollegeStatusApproved           CollegeStatus = "APPROVED"
	CollegeStatusRejected           CollegeStatus = "REJECTED"
	CollegeStatusCorrectionRequired CollegeStatus = "CORRECTION_REQUIRED"
)

var validCollegeStatuses = []CollegeStatus{
	CollegeStatusPending,
	CollegeStatusApproved,
	CollegeStatusRejected,
	CollegeStatusCorrectionRequired,
}

// String implements fmt.Stringer.
func (s CollegeStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the canonical college_status enum.
func (s CollegeStatus) IsValid() bool {
	for _, candidate := range validCollegeStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCollegeStatus converts raw input into a CollegeStatus.
func ParseCollegeStatus(value string) (CollegeStatus, error) {
	for _, candidate := range validCollegeStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid college status %q", value)
}

// CollegeType distinguishes government and private institutions.
type CollegeType string

const (
	CollegeTypeGovernment CollegeType = "Government"
	CollegeTypePrivate    CollegeType = "Private"
)

var validCollegeTypes = []CollegeType{
	CollegeTypeGovernment,
	CollegeTypePrivate,
}

// String implements fmt.Stringer.
func (t CollegeType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known CollegeType.
func (t CollegeType) IsValid() bool {
	for _, candidate := range validCollegeTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseCollegeType converts raw input into a CollegeType.
func ParseCollegeType(value string) (CollegeType, error) {
	for _, candidate := range validCollegeTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid college type %q", value)
}
