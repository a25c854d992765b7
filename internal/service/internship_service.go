// Package service provides application business logic (listings, applications, profiles).
package service

import (
	"context"
	"strings"
	"time"

	"skillbridge/internal/models"
	"skillbridge/internal/repository"
)

// InternshipService provides internship listing business logic.
type InternshipService struct {
	internshipRepo repository.InternshipRepository
}

// NewInternshipService returns a new InternshipService.
func NewInternshipService(internshipRepo repository.InternshipRepository) *InternshipService {
	return &InternshipService{internshipRepo: internshipRepo}
}

// ListInternshipsInput is the input for listing internships.
type ListInternshipsInput struct {
	Skill    string
	Country  string
	Duration string
	Search   string
	Page     int
	Limit    int
}

// ListInternshipsResult pairs a page of listings with pagination totals.
type ListInternshipsResult struct {
	Internships []models.Internship
	Total       int64
	Page        int
	Pages       int
}

// InternshipInput carries the writable internship fields. Nil pointers on
// update mean "leave unchanged".
type InternshipInput struct {
	Title               *string
	Company             *string
	Description         *string
	Skills              []string
	Country             *string
	Duration            *string
	Stipend             *string
	ApplicationDeadline *time.Time
	IsActive            *bool
}

// ListInternships returns active listings matching the filters, newest first.
func (s *InternshipService) ListInternships(ctx context.Context, in ListInternshipsInput) (*ListInternshipsResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = 10
	}

	internships, total, err := s.internshipRepo.List(ctx, repository.ListFilter{
		Skill:    in.Skill,
		Country:  in.Country,
		Duration: in.Duration,
		Search:   in.Search,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &ListInternshipsResult{
		Internships: internships,
		Total:       total,
		Page:        page,
		Pages:       pages,
	}, nil
}

// GetInternship returns a single listing by id, active or not.
func (s *InternshipService) GetInternship(ctx context.Context, id uint) (*models.Internship, error) {
	return s.internshipRepo.GetByID(ctx, id)
}

// CreateInternship validates and persists a new listing stamped with its creator.
func (s *InternshipService) CreateInternship(ctx context.Context, creatorID uint, in InternshipInput) (*models.Internship, error) {
	internship := &models.Internship{
		Stipend:     models.StipendUnpaid,
		IsActive:    true,
		CreatedByID: creatorID,
	}
	applyInternshipInput(internship, in)
	if err := validateInternship(internship); err != nil {
		return nil, err
	}
	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// UpdateInternship applies the provided fields to an existing listing and
// re-validates the result.
func (s *InternshipService) UpdateInternship(ctx context.Context, id uint, in InternshipInput) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInternshipInput(internship, in)
	if err := validateInternship(internship); err != nil {
		return nil, err
	}
	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// DeleteInternship removes a listing. Existing applications are kept.
func (s *InternshipService) DeleteInternship(ctx context.Context, id uint) error {
	if _, err := s.internshipRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.internshipRepo.Delete(ctx, id)
}

func applyInternshipInput(internship *models.Internship, in InternshipInput) {
	if in.Title != nil {
		internship.Title = strings.TrimSpace(*in.Title)
	}
	if in.Company != nil {
		internship.Company = strings.TrimSpace(*in.Company)
	}
	if in.Description != nil {
		internship.Description = *in.Description
	}
	if in.Skills != nil {
		internship.Skills = in.Skills
	}
	if in.Country != nil {
		internship.Country = strings.TrimSpace(*in.Country)
	}
	if in.Duration != nil {
		internship.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.Stipend != nil {
		internship.Stipend = *in.Stipend
	}
	if in.ApplicationDeadline != nil {
		internship.ApplicationDeadline = *in.ApplicationDeadline
	}
	if in.IsActive != nil {
		internship.IsActive = *in.IsActive
	}
}

func validateInternship(internship *models.Internship) error {
	switch {
	case internship.Title == "":
		return models.NewValidationError("Title is required")
	case internship.Company == "":
		return models.NewValidationError("Company is required")
	case internship.Description == "":
		return models.NewValidationError("Description is required")
	case len(internship.Skills) == 0:
		return models.NewValidationError("At least one skill is required")
	case internship.Country == "":
		return models.NewValidationError("Country is required")
	case internship.Duration == "":
		return models.NewValidationError("Duration is required")
	case internship.ApplicationDeadline.IsZero():
		return models.NewValidationError("Valid application deadline is required")
	}
	return nil
}
