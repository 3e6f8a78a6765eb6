package colleges

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

// Repository persists college submissions and dashboard reads.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a colleges repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// SubmissionRecord is the write set assembled by the service: one academic
// row, one placement row, and the full replacement lists.
type SubmissionRecord struct {
	Academic  models.AcademicDetail
	Placement models.PlacementDetail
	Faculty   []models.Faculty
	Documents []models.Document
}

// Submit applies a college data submission atomically. The college row is
// locked first; a locked record that is not in the correction window
// rejects the whole submission before anything is written.
func (r *Repository) Submit(ctx context.Context, collegeID uuid.UUID, record SubmissionRecord, submittedAt time.Time) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		var college models.College
		if err := db.LockForUpdate(tx).
			Where("id = ?", collegeID).
			First(&college).Error; err != nil {
			return err
		}

		if college.IsLocked && college.Status != enums.CollegeStatusCorrectionRequired {
			return pkgerrors.New(pkgerrors.CodeLocked, "record is locked pending verification").
				WithDetails(map[string]any{"status": college.Status})
		}

		updates := map[string]any{
			"status":       enums.CollegeStatusPending,
			"is_locked":    true,
			"remarks":      nil,
			"submitted_at": submittedAt,
		}
		if err := tx.Model(&models.College{}).Where("id = ?", collegeID).Updates(updates).Error; err != nil {
			return err
		}

		if err := upsertAcademic(tx, collegeID, record.Academic); err != nil {
			return err
		}
		if err := upsertPlacement(tx, collegeID, record.Placement); err != nil {
			return err
		}

		if err := tx.Where("college_id = ?", collegeID).Delete(&models.Faculty{}).Error; err != nil {
			return err
		}
		if len(record.Faculty) > 0 {
			if err := tx.Create(&record.Faculty).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("college_id = ?", collegeID).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if len(record.Documents) > 0 {
			if err := tx.Create(&record.Documents).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func upsertAcademic(tx *gorm.DB, collegeID uuid.UUID, detail models.AcademicDetail) error {
	var existing models.AcademicDetail
	err := tx.Where("college_id = ?", collegeID).First(&existing).Error
	switch {
	case err == nil:
		return tx.Model(&models.AcademicDetail{}).
			Where("college_id = ?", collegeID).
			Updates(map[string]any{
				"courses_offered": detail.CoursesOffered,
				"fees_per_course": detail.FeesPerCourse,
				"intake_capacity": detail.IntakeCapacity,
				"accreditation":   detail.Accreditation,
			}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		detail.ID = uuid.New()
		detail.CollegeID = collegeID
		return tx.Create(&detail).Error
	default:
		return err
	}
}

func upsertPlacement(tx *gorm.DB, collegeID uuid.UUID, detail models.PlacementDetail) error {
	var existing models.PlacementDetail
	err := tx.Where("college_id = ?", collegeID).First(&existing).Error
	switch {
	case err == nil:
		return tx.Model(&models.PlacementDetail{}).
			Where("college_id = ?", collegeID).
			Updates(map[string]any{
				"placement_percentage": detail.PlacementPercentage,
				"avg_package":          detail.AvgPackage,
				"max_package":          detail.MaxPackage,
				"companies_visited":    detail.CompaniesVisited,
				"proof_url":            detail.ProofURL,
			}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		detail.ID = uuid.New()
		detail.CollegeID = collegeID
		return tx.Create(&detail).Error
	default:
		return err
	}
}

// FindWithDetails loads the college plus all its detail rows.
func (r *Repository) FindWithDetails(ctx context.Context, id uuid.UUID) (*models.College, error) {
	var college models.College
	err := r.client.DB().WithContext(ctx).
		Preload("AcademicDetails").
		Preload("PlacementDetails").
		Preload("Faculty").
		Preload("Documents").
		Where("id = ?", id).
		First(&college).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// FindByID loads the bare college row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.College, error) {
	var college models.College
	if err := r.client.DB().WithContext(ctx).Where("id = ?", id).First(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}
