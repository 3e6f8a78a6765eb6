package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/db"
	"github.com/edusphere/edusphere-backend/pkg/db/models"
)

// Repository persists the curated scholarship and course catalogs.
type Repository struct {
	client *db.Client
}

// NewRepository constructs a catalog repository over the shared client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ListScholarships(ctx context.Context) ([]models.Scholarship, error) {
	var rows []models.Scholarship
	err := r.client.DB().WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *Repository) CreateScholarship(ctx context.Context, scholarship *models.Scholarship) error {
	return r.client.DB().WithContext(ctx).Create(scholarship).Error
}

func (r *Repository) UpdateScholarship(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	result := r.client.DB().WithContext(ctx).
		Model(&models.Scholarship{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *Repository) DeleteScholarship(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.client.DB().WithContext(ctx).Where("id = ?", id).Delete(&models.Scholarship{})
	return result.RowsAffected, result.Error
}

func (r *Repository) ListTrendingCourses(ctx context.Context) ([]models.TrendingCourse, error) {
	var rows []models.TrendingCourse
	err := r.client.DB().WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *Repository) CreateTrendingCourse(ctx context.Context, course *models.TrendingCourse) error {
	return r.client.DB().WithContext(ctx).Create(course).Error
}

func (r *Repository) UpdateTrendingCourse(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	result := r.client.DB().WithContext(ctx).
		Model(&models.TrendingCourse{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *Repository) DeleteTrendingCourse(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.client.DB().WithContext(ctx).Where("id = ?", id).Delete(&models.TrendingCourse{})
	return result.RowsAffected, result.Error
}
