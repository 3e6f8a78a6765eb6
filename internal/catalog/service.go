package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/edusphere/edusphere-backend/pkg/db/models"
	pkgerrors "github.com/edusphere/edusphere-backend/pkg/errors"
)

type catalogRepository interface {
	ListScholarships(ctx context.Context) ([]models.Scholarship, error)
	CreateScholarship(ctx context.Context, scholarship *models.Scholarship) error
	UpdateScholarship(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	DeleteScholarship(ctx context.Context, id uuid.UUID) (int64, error)
	ListTrendingCourses(ctx context.Context) ([]models.TrendingCourse, error)
	CreateTrendingCourse(ctx context.Context, course *models.TrendingCourse) error
	UpdateTrendingCourse(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
	DeleteTrendingCourse(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service manages the curated catalogs: public listing plus gov CRUD.
type Service interface {
	Scholarships(ctx context.Context) ([]models.Scholarship, error)
	CreateScholarship(ctx context.Context, input ScholarshipInput) (*models.Scholarship, error)
	UpdateScholarship(ctx context.Context, id uuid.UUID, input ScholarshipInput) error
	DeleteScholarship(ctx context.Context, id uuid.UUID) error
	TrendingCourses(ctx context.Context) ([]models.TrendingCourse, error)
	CreateTrendingCourse(ctx context.Context, input TrendingCourseInput) (*models.TrendingCourse, error)
	UpdateTrendingCourse(ctx context.Context, id uuid.UUID, input TrendingCourseInput) error
	DeleteTrendingCourse(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo catalogRepository
}

// NewService builds the catalog service.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Scholarships(ctx context.Context) ([]models.Scholarship, error) {
	rows, err := s.repo.ListScholarships(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list scholarships")
	}
	return rows, nil
}

func (s *service) CreateScholarship(ctx context.Context, input ScholarshipInput) (*models.Scholarship, error) {
	scholarship := &models.Scholarship{
		ID:          uuid.New(),
		Name:        input.Name,
		Amount:      input.Amount,
		Eligibility: input.Eligibility,
		Link:        input.Link,
	}
	if err := s.repo.CreateScholarship(ctx, scholarship); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create scholarship")
	}
	return scholarship, nil
}

func (s *service) UpdateScholarship(ctx context.Context, id uuid.UUID, input ScholarshipInput) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "scholarship id is required")
	}
	affected, err := s.repo.UpdateScholarship(ctx, id, map[string]any{
		"name":        input.Name,
		"amount":      input.Amount,
		"eligibility": input.Eligibility,
		"link":        input.Link,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update scholarship")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "scholarship not found")
	}
	return nil
}

func (s *service) DeleteScholarship(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "scholarship id is required")
	}
	affected, err := s.repo.DeleteScholarship(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete scholarship")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "scholarship not found")
	}
	return nil
}

func (s *service) TrendingCourses(ctx context.Context) ([]models.TrendingCourse, error) {
	rows, err := s.repo.ListTrendingCourses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list trending courses")
	}
	return rows, nil
}

func (s *service) CreateTrendingCourse(ctx context.Context, input TrendingCourseInput) (*models.TrendingCourse, error) {
	course := &models.TrendingCourse{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
	}
	if err := s.repo.CreateTrendingCourse(ctx, course); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create trending course")
	}
	return course, nil
}

func (s *service) UpdateTrendingCourse(ctx context.Context, id uuid.UUID, input TrendingCourseInput) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "course id is required")
	}
	affected, err := s.repo.UpdateTrendingCourse(ctx, id, map[string]any{
		"name":        input.Name,
		"category":    input.Category,
		"description": input.Description,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update trending course")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "trending course not found")
	}
	return nil
}

func (s *service) DeleteTrendingCourse(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "course id is required")
	}
	affected, err := s.repo.DeleteTrendingCourse(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete trending course")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "trending course not found")
	}
	return nil
}
