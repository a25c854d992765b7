package repository

import (
	"context"
	"errors"
	"strings"

	"skillbridge/internal/cache"
	"skillbridge/internal/models"

	"gorm.io/gorm"
)

// ListFilter holds the public listing filters. All string filters are
// case-insensitive substring matches, ANDed together; Search ORs across
// title, company and description.
type ListFilter struct {
	Skill    string
	Country  string
	Duration string
	Search   string
	Limit    int
	Offset   int
}

// InternshipRepository defines persistence operations for internship listings.
type InternshipRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Internship, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Internship, error)
	Create(ctx context.Context, internship *models.Internship) error
	Update(ctx context.Context, internship *models.Internship) error
	Delete(ctx context.Context, id uint) error
}

type internshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository returns a new InternshipRepository implementation.
func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &internshipRepository{db: db}
}

// creatorFields limits the joined creator to its public identity.
func creatorFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (r *internshipRepository) List(ctx context.Context, filter ListFilter) ([]models.Internship, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Internship{}).Where("is_active = ?", true)

	if filter.Skill != "" {
		// Skills is a JSON-serialized list; a lowercase LIKE over the raw
		// column matches any element by substring on both Postgres and SQLite.
		query = query.Where("LOWER(skills) LIKE ?", likePattern(filter.Skill))
	}
	if filter.Country != "" {
		query = query.Where("LOWER(country) LIKE ?", likePattern(filter.Country))
	}
	if filter.Duration != "" {
		query = query.Where("LOWER(duration) LIKE ?", likePattern(filter.Duration))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError("Error fetching internships", err)
	}

	var internships []models.Internship
	if err := query.
		Preload("CreatedBy", creatorFields).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&internships).Error; err != nil {
		return nil, 0, models.NewInternalError("Error fetching internships", err)
	}

	return internships, total, nil
}

func (r *internshipRepository) GetByID(ctx context.Context, id uint) (*models.Internship, error) {
	var internship models.Internship

	err := cache.Aside(ctx, cache.InternshipKey(id), &internship, cache.InternshipTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("CreatedBy", creatorFields).
			First(&internship, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Internship")
			}
			return models.NewInternalError("Error fetching internship", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	if err := r.db.WithContext(ctx).Create(internship).Error; err != nil {
		return models.NewInternalError("Error creating internship", err)
	}
	return nil
}

func (r *internshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	if err := r.db.WithContext(ctx).Save(internship).Error; err != nil {
		return models.NewInternalError("Error updating internship", err)
	}
	cache.InvalidateInternship(ctx, internship.ID)
	return nil
}

// Delete physically removes the listing. Applications referencing it are
// intentionally left in place.
func (r *internshipRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Internship{}, id).Error; err != nil {
		return models.NewInternalError("Error deleting internship", err)
	}
	cache.InvalidateInternship(ctx, id)
	return nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
