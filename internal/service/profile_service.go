package service

import (
	"context"

	"skillbridge/internal/models"
	"skillbridge/internal/repository"
	"skillbridge/internal/validation"
)

// ProfileService provides student profile business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// ProfileInput carries the writable profile fields. Nil pointers on update
// mean "leave unchanged"; non-nil empty slices clear the list.
type ProfileInput struct {
	Bio        *string
	Phone      *string
	Location   *string
	Education  []models.EducationEntry
	Experience []models.ExperienceEntry
	Skills     []string
	Projects   []models.ProjectEntry
	Resume     *string
	Portfolio  *string
	Linkedin   *string
	Github     *string
}

// GetMyProfile returns the caller's profile.
func (s *ProfileService) GetMyProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// CreateProfile creates the caller's profile, failing if one already exists.
func (s *ProfileService) CreateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !models.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Profile already exists. Use PUT to update.")
	}

	profile := &models.Profile{UserID: userID}
	applyProfileInput(profile, in)
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpsertProfile updates the caller's profile, creating it when absent. The
// returned bool reports whether a new profile was created.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uint, in ProfileInput) (*models.Profile, bool, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !models.IsNotFound(err) {
			return nil, false, err
		}
		profile = &models.Profile{UserID: userID}
		applyProfileInput(profile, in)
		if err := validateProfile(profile); err != nil {
			return nil, false, err
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, false, err
		}
		return profile, true, nil
	}

	applyProfileInput(profile, in)
	if err := validateProfile(profile); err != nil {
		return nil, false, err
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, false, err
	}
	return profile, false, nil
}

// DeleteProfile removes the caller's profile.
func (s *ProfileService) DeleteProfile(ctx context.Context, userID uint) error {
	return s.profileRepo.DeleteByUserID(ctx, userID)
}

func applyProfileInput(profile *models.Profile, in ProfileInput) {
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if in.Education != nil {
		profile.Education = in.Education
	}
	if in.Experience != nil {
		profile.Experience = in.Experience
	}
	if in.Skills != nil {
		profile.Skills = in.Skills
	}
	if in.Projects != nil {
		profile.Projects = in.Projects
	}
	if in.Resume != nil {
		profile.Resume = *in.Resume
	}
	if in.Portfolio != nil {
		profile.Portfolio = *in.Portfolio
	}
	if in.Linkedin != nil {
		profile.Linkedin = *in.Linkedin
	}
	if in.Github != nil {
		profile.Github = *in.Github
	}
}

func validateProfile(profile *models.Profile) error {
	if len(profile.Bio) > 500 {
		return models.NewValidationError("Bio cannot exceed 500 characters")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"Resume", profile.Resume},
		{"Portfolio", profile.Portfolio},
		{"LinkedIn", profile.Linkedin},
		{"GitHub", profile.Github},
	} {
		if field.value != "" && !validation.IsURL(field.value) {
			return models.NewValidationError(field.name + " must be a valid URL")
		}
	}
	return nil
}
