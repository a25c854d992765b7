package repository

import (
	"context"
	"errors"

	"skillbridge/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	ExistsForStudent(ctx context.Context, internshipID, studentID uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error)
	ListAll(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		// The composite unique index closes the race between the duplicate
		// pre-check and the insert; report it the same way as the pre-check.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("You have already applied for this internship")
		}
		return models.NewInternalError("Error submitting application", err)
	}
	return nil
}

func (r *applicationRepository) ExistsForStudent(ctx context.Context, internshipID, studentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("internship_id = ? AND student_id = ?", internshipID, studentID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError("Error checking application", err)
	}
	return count > 0, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application")
		}
		return nil, models.NewInternalError("Error fetching application", err)
	}
	return &application, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Internship", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "company", "country", "duration", "stipend")
		}).
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, models.NewInternalError("Error fetching applications", err)
	}
	return applications, nil
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Internship", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "company")
		}).
		Preload("Student", creatorFields).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, models.NewInternalError("Error fetching applications", err)
	}
	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Application, error) {
	application, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(application).
		Update("status", status).Error; err != nil {
		return nil, models.NewInternalError("Error updating application status", err)
	}
	return application, nil
}
