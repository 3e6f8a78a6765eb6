package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
	"github.com/edusphere/edusphere-backend/pkg/enums"
)

// DecideFunc inspects the freshly locked college row and either returns the
// transition to apply or an error that aborts the transaction.
type DecideFunc func(college *models.College) (Transition, error)

// Repository persists verification decisions and serves the officer queues.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a verification repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// ApplyAction executes one officer decision atomically. The college row is
// locked FOR UPDATE before decide re-checks preconditions, so of two
// concurrent conflicting actions exactly one commits; the update and the
// audit row go through the same transaction.
func (r *Repository) ApplyAction(ctx context.Context, collegeID, officerID uuid.UUID, action enums.VerificationAction, remarks string, verifiedAt time.Time, decide DecideFunc) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		var college models.College
		if err := db.LockForUpdate(tx).
			Where("id = ?", collegeID).
			First(&college).Error; err != nil {
			return err
		}

		transition, err := decide(&college)
		if err != nil {
			return err
		}

		updates := map[string]any{
			"status":          transition.Status,
			"is_locked":       transition.Locked,
			"approval_status": transition.ApprovalStatus,
			"verified_by":     officerID,
			"verified_at":     verifiedAt,
			"remarks":         remarksColumn(remarks),
		}
		if transition.ApprovedAt != nil {
			updates["approved_at"] = transition.ApprovedAt
		}
		if transition.ValidUntil != nil {
			updates["valid_until"] = transition.ValidUntil
		}

		if err := tx.Model(&models.College{}).Where("id = ?", collegeID).Updates(updates).Error; err != nil {
			return err
		}

		logRemarks := remarks
		if logRemarks == "" {
			logRemarks = fmt.Sprintf("%s Successfully", action)
		}
		log := models.VerificationLog{
			ID:        uuid.New(),
			CollegeID: collegeID,
			OfficerID: officerID,
			Action:    action,
			Remarks:   logRemarks,
		}
		return tx.Create(&log).Error
	})
}

func remarksColumn(remarks string) *string {
	if remarks == "" {
		return nil
	}
	return &remarks
}

// PendingQueue lists submitted colleges waiting for an officer decision,
// ordered by name.
func (r *Repository) PendingQueue(ctx context.Context) ([]models.College, error) {
	var rows []models.College
	err := r.client.DB().WithContext(ctx).
		Where("status IN ? AND is_locked = ?", []enums.CollegeStatus{
			enums.CollegeStatusPending,
			enums.CollegeStatusCorrectionRequired,
		}, true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ApprovedQueue lists approved colleges with optional location/type filters.
func (r *Repository) ApprovedQueue(ctx context.Context, filters QueueFilters) ([]models.College, error) {
	query := r.client.DB().WithContext(ctx).
		Where("status = ?", enums.CollegeStatusApproved)

	if filters.Country != "" {
		query = query.Where("country = ?", filters.Country)
	}
	if filters.State != "" {
		query = query.Where("state = ?", filters.State)
	}
	if filters.District != "" {
		query = query.Where("district = ?", filters.District)
	}
	if filters.Type != "" {
		query = query.Where("college_type = ?", filters.Type)
	}
	if filters.Search != "" {
		query = query.Where("name LIKE ?", "%"+filters.Search+"%")
	}

	var rows []models.College
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
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

// Logs returns the audit trail newest-first with the officer row joined.
func (r *Repository) Logs(ctx context.Context, collegeID uuid.UUID) ([]models.VerificationLog, error) {
	var rows []models.VerificationLog
	err := r.client.DB().WithContext(ctx).
		Preload("Officer").
		Where("college_id = ?", collegeID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
