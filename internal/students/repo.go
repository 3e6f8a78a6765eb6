package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	"github.com/edusphere/edusphere-backend/pkg/pagination"
)

// Repository serves the student-facing reads and the profile upsert.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a students repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// UpsertProfile replaces the student's profile row, creating it on first
// save.
func (r *Repository) UpsertProfile(ctx context.Context, studentID uuid.UUID, profile models.StudentProfile) error {
	conn := r.client.DB().WithContext(ctx)

	var existing models.StudentProfile
	err := conn.Where("student_id = ?", studentID).First(&existing).Error
	switch {
	case err == nil:
		return conn.Model(&models.StudentProfile{}).
			Where("student_id = ?", studentID).
			Updates(map[string]any{
				"full_name":       profile.FullName,
				"email":           profile.Email,
				"country":         profile.Country,
				"state":           profile.State,
				"district":        profile.District,
				"education_level": profile.EducationLevel,
			}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile.ID = uuid.New()
		profile.StudentID = studentID
		return conn.Create(&profile).Error
	default:
		return err
	}
}

// FindStudent loads the student row with its profile.
func (r *Repository) FindStudent(ctx context.Context, studentID uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.client.DB().WithContext(ctx).
		Preload("Profile").
		Where("id = ?", studentID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ApprovedPage is one keyset page of approved college rows.
type ApprovedPage struct {
	Colleges   []models.College
	NextCursor string
}

// ListApproved returns a cursor page of approved colleges whose approval has
// not lapsed as of now. Expiry is enforced here so page sizes stay exact.
func (r *Repository) ListApproved(ctx context.Context, filters BrowseFilters, params pagination.Params, now time.Time) (*ApprovedPage, error) {
	pageSize := pagination.NormalizeLimit(params.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(params.Limit)

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	qb := r.client.DB().WithContext(ctx).
		Model(&models.College{}).
		Where("status = ?", enums.CollegeStatusApproved).
		Where("valid_until IS NULL OR valid_until > ?", now)

	if filters.Country != "" {
		qb = qb.Where("country = ?", filters.Country)
	}
	if filters.State != "" {
		qb = qb.Where("state = ?", filters.State)
	}
	if filters.District != "" {
		qb = qb.Where("district = ?", filters.District)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(name) LIKE ? OR LOWER(code) LIKE ?)", pattern, pattern)
	}

	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.College
	if err := qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	return &ApprovedPage{
		Colleges:   rows,
		NextCursor: nextCursor,
	}, nil
}

// FindApprovedWithDetails loads one approved college with its detail rows.
// Non-approved records surface as not found to keep unverified data private.
func (r *Repository) FindApprovedWithDetails(ctx context.Context, id uuid.UUID) (*models.College, error) {
	var college models.College
	err := r.client.DB().WithContext(ctx).
		Preload("AcademicDetails").
		Preload("PlacementDetails").
		Preload("Faculty").
		Preload("Documents").
		Where("id = ? AND status = ?", id, enums.CollegeStatusApproved).
		First(&college).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}
