package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
)

// Repository covers the account lookups and writes the auth flows need.
type Repository struct {
	client *db.Client
}

// NewRepository constructs an auth repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// CreateCollege inserts a new college account row.
func (r *Repository) CreateCollege(ctx context.Context, college *models.College) error {
	return r.client.DB().WithContext(ctx).Create(college).Error
}

// FindCollegeByEmail loads a college account by its login email.
func (r *Repository) FindCollegeByEmail(ctx context.Context, email string) (*models.College, error) {
	var college models.College
	if err := r.client.DB().WithContext(ctx).Where("email = ?", email).First(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

// FindOfficerByEmployeeID loads a government officer by employee ID.
func (r *Repository) FindOfficerByEmployeeID(ctx context.Context, employeeID string) (*models.GovernmentUser, error) {
	var officer models.GovernmentUser
	if err := r.client.DB().WithContext(ctx).Where("employee_id = ?", employeeID).First(&officer).Error; err != nil {
		return nil, err
	}
	return &officer, nil
}

// FindOrCreateStudent loads the student row for a phone number, creating it
// on first contact.
func (r *Repository) FindOrCreateStudent(ctx context.Context, phone string) (*models.Student, error) {
	var student models.Student
	err := r.client.DB().WithContext(ctx).Where("phone = ?", phone).First(&student).Error
	switch {
	case err == nil:
		return &student, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		student = models.Student{ID: uuid.New(), Phone: phone}
		if err := r.client.DB().WithContext(ctx).Create(&student).Error; err != nil {
			return nil, err
		}
		return &student, nil
	default:
		return nil, err
	}
}

// FindStudentByPhone loads an existing student row.
func (r *Repository) FindStudentByPhone(ctx context.Context, phone string) (*models.Student, error) {
	var student models.Student
	if err := r.client.DB().WithContext(ctx).Where("phone = ?", phone).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// SetStudentOTP stores the hash of a freshly issued code and its expiry.
func (r *Repository) SetStudentOTP(ctx context.Context, studentID uuid.UUID, otpHash string, expiresAt time.Time) error {
	return r.client.DB().WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", studentID).
		Updates(map[string]any{
			"otp_hash":       otpHash,
			"otp_expires_at": expiresAt,
		}).Error
}

// ClearStudentOTP wipes the code columns after a successful verification.
func (r *Repository) ClearStudentOTP(ctx context.Context, studentID uuid.UUID) error {
	return r.client.DB().WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", studentID).
		Updates(map[string]any{
			"otp_hash":       nil,
			"otp_expires_at": nil,
		}).Error
}
