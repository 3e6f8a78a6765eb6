package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/edusphere/edusphere-backend/pkg/auth"
	"github.com/edusphere/edusphere-backend/pkg/auth/session"
	"github.com/edusphere/edusphere-backend/pkg/config"
	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
	"github.com/edusphere/edusphere-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

type accountsRepository interface {
	CreateCollege(ctx context.Context, college *models.College) error
	FindCollegeByEmail(ctx context.Context, email string) (*models.College, error)
	FindOfficerByEmployeeID(ctx context.Context, employeeID string) (*models.GovernmentUser, error)
	FindOrCreateStudent(ctx context.Context, phone string) (*models.Student, error)
	FindStudentByPhone(ctx context.Context, phone string) (*models.Student, error)
	SetStudentOTP(ctx context.Context, studentID uuid.UUID, otpHash string, expiresAt time.Time) error
	ClearStudentOTP(ctx context.Context, studentID uuid.UUID) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// Service defines the behavior needed by the auth controllers.
type Service interface {
	RegisterCollege(ctx context.Context, req RegisterCollegeRequest) (*LoginResponse, error)
	CollegeLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GovLogin(ctx context.Context, req GovLoginRequest) (*LoginResponse, error)
	RequestStudentOTP(ctx context.Context, req OTPRequest) (*OTPResponse, error)
	VerifyStudentOTP(ctx context.Context, req OTPVerifyRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	accounts    accountsRepository
	session     sessionManager
	appCfg      config.AppConfig
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	otpCfg      config.OTPConfig
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Accounts       accountsRepository
	SessionManager sessionManager
	AppConfig      config.AppConfig
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	OTPConfig      config.OTPConfig
}

// NewService constructs the auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Accounts == nil {
		return nil, fmt.Errorf("accounts repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if params.OTPConfig.Length <= 0 || params.OTPConfig.TTL <= 0 {
		return nil, fmt.Errorf("otp length and ttl must be positive")
	}
	return &service{
		accounts:    params.Accounts,
		session:     params.SessionManager,
		appCfg:      params.AppConfig,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		otpCfg:      params.OTPConfig,
		now:         time.Now,
	}, nil
}

func (s *service) RegisterCollege(ctx context.Context, req RegisterCollegeRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if !req.CollegeType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid college type")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	college := &models.College{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          email,
		PasswordHash:   passwordHash,
		Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
		Address:        req.Address,
		CollegeType:    req.CollegeType,
		Country:        req.Country,
		State:          req.State,
		District:       req.District,
		PrincipalName:  req.PrincipalName,
		PrincipalPhone: req.PrincipalPhone,
		Status:         enums.CollegeStatusPending,
		ApprovalStatus: enums.ApprovalStatusPending,
	}
	if err := s.accounts.CreateCollege(ctx, college); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email or college code already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create college")
	}

	return s.issueTokens(ctx, college.ID, enums.RoleCollege, college.Name)
}

func (s *service) CollegeLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	college, err := s.accounts.FindCollegeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup college")
	}

	if err := s.verifyPassword(req.Password, college.PasswordHash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, college.ID, enums.RoleCollege, college.Name)
}

func (s *service) GovLogin(ctx context.Context, req GovLoginRequest) (*LoginResponse, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	officer, err := s.accounts.FindOfficerByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup officer")
	}

	if err := s.verifyPassword(req.Password, officer.PasswordHash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, officer.ID, enums.RoleGov, officer.Name)
}

// RequestStudentOTP issues a one-time code for the phone number, creating
// the student row on first contact. There is no SMS gateway wired, so the
// code travels back in the response everywhere except production.
func (s *service) RequestStudentOTP(ctx context.Context, req OTPRequest) (*OTPResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}

	student, err := s.accounts.FindOrCreateStudent(ctx, phone)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load student")
	}

	otp, err := security.GenerateOTP(s.otpCfg.Length)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate otp")
	}
	otpHash, err := security.HashPassword(otp, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash otp")
	}

	expiresAt := s.now().Add(s.otpCfg.TTL)
	if err := s.accounts.SetStudentOTP(ctx, student.ID, otpHash, expiresAt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store otp")
	}

	resp := &OTPResponse{Phone: phone}
	if !s.appCfg.IsProd() {
		resp.OTP = otp
	}
	return resp, nil
}

func (s *service) VerifyStudentOTP(ctx context.Context, req OTPVerifyRequest) (*LoginResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" || req.OTP == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired otp")
	}

	student, err := s.accounts.FindStudentByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired otp")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup student")
	}

	if student.OTPHash == nil || student.OTPExpiresAt == nil || !student.OTPExpiresAt.After(s.now()) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired otp")
	}

	valid, err := security.VerifyPassword(req.OTP, *student.OTPHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify otp")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired otp")
	}

	if err := s.accounts.ClearStudentOTP(ctx, student.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear otp")
	}

	return s.issueTokens(ctx, student.ID, enums.RoleStudent, "")
}

// Refresh rotates the refresh token. The presented access token may already
// be expired; only its signature and session id are checked.
func (s *service) Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, req.AccessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	newAccessID, newRefreshToken, err := s.session.Rotate(ctx, claims.ID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rotate session")
	}

	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		SubjectID: claims.SubjectID,
		Role:      claims.Role,
		JTI:       newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session")
	}
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	return nil
}

func (s *service) verifyPassword(password, hash string) error {
	valid, err := security.VerifyPassword(password, hash)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return nil
}

func (s *service) issueTokens(ctx context.Context, subjectID uuid.UUID, role enums.ActorRole, name string) (*LoginResponse, error) {
	accessID := session.NewAccessID()
	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		SubjectID: subjectID,
		Role:      role,
		JTI:       accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SubjectID:    subjectID,
		Role:         role,
		Name:         name,
	}, nil
}
