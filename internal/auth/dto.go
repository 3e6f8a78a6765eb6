package auth

import (
	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// RegisterCollegeRequest is the onboarding payload for a new college account.
type RegisterCollegeRequest struct {
	Name           string            `json:"name" validate:"required"`
	Email          string            `json:"email" validate:"required,email"`
	Password       string            `json:"password" validate:"required,min=8"`
	Code           string            `json:"code" validate:"required"`
	Address        string            `json:"address" validate:"required"`
	CollegeType    enums.CollegeType `json:"college_type" validate:"required"`
	Country        string            `json:"country" validate:"required"`
	State          string            `json:"state" validate:"required"`
	District       string            `json:"district" validate:"required"`
	PrincipalName  string            `json:"principal_name" validate:"required"`
	PrincipalPhone string            `json:"principal_phone" validate:"required"`
}

// LoginRequest captures college credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GovLoginRequest captures officer credentials. Officers sign in with their
// employee ID rather than email.
type GovLoginRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// OTPRequest asks for a one-time code to be issued to a phone number.
type OTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10"`
}

// OTPVerifyRequest exchanges a one-time code for tokens.
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// RefreshRequest rotates a refresh token. The access token may be expired;
// it is only inspected for its session identifier.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse carries the token pair plus the authenticated identity.
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	SubjectID    uuid.UUID       `json:"subject_id"`
	Role         enums.ActorRole `json:"role"`
	Name         string          `json:"name,omitempty"`
}

// OTPResponse acknowledges an issued code. The code itself is only echoed
// back outside production, where no SMS gateway is wired.
type OTPResponse struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp,omitempty"`
}

// RefreshResponse is the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
