package service

import (
	"context"
	"strings"
	"time"

	"skillbridge/internal/middleware"
	"skillbridge/internal/models"
	"skillbridge/internal/repository"
)

// allowedStatusUpdates is the set the status endpoint accepts. "interview"
// is a valid stored status but is deliberately not settable through the API.
var allowedStatusUpdates = map[string]bool{
	models.StatusPending:  true,
	models.StatusReviewed: true,
	models.StatusAccepted: true,
	models.StatusRejected: true,
}

// ApplicationService provides application submission and review logic.
type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	internshipRepo  repository.InternshipRepository
	userRepo        repository.UserRepository
	now             func() time.Time
}

// NewApplicationService returns a new ApplicationService.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	internshipRepo repository.InternshipRepository,
	userRepo repository.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// SubmitApplicationInput is the input for submitting an application.
type SubmitApplicationInput struct {
	StudentID    uint
	InternshipID uint
	CoverLetter  string
	Resume       string
}

// SubmitApplication runs the submission guards in order and persists the
// application with the student's identity snapshotted onto it.
func (s *ApplicationService) SubmitApplication(ctx context.Context, in SubmitApplicationInput) (*models.Application, error) {
	if in.InternshipID == 0 {
		return nil, models.NewValidationError("Internship ID is required")
	}
	coverLetter := strings.TrimSpace(in.CoverLetter)
	if coverLetter == "" {
		return nil, models.NewValidationError("Cover letter is required")
	}

	internship, err := s.internshipRepo.GetByID(ctx, in.InternshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsActive {
		return nil, models.NewValidationError("This internship is no longer accepting applications")
	}
	// Submitting exactly at the deadline still succeeds.
	if s.now().After(internship.ApplicationDeadline) {
		return nil, models.NewValidationError("Application deadline has passed")
	}

	exists, err := s.applicationRepo.ExistsForStudent(ctx, in.InternshipID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("You have already applied for this internship")
	}

	student, err := s.userRepo.GetByID(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, models.NewNotFoundError("User")
	}

	application := &models.Application{
		InternshipID: in.InternshipID,
		StudentID:    in.StudentID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		CoverLetter:  coverLetter,
		Resume:       in.Resume,
		Status:       models.StatusPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	middleware.ApplicationsSubmitted.Inc()

	application.Internship = internship
	return application, nil
}

// ListMyApplications returns the student's own applications, newest first.
func (s *ApplicationService) ListMyApplications(ctx context.Context, studentID uint) ([]models.Application, error) {
	return s.applicationRepo.ListByStudent(ctx, studentID)
}

// ListAllApplications returns every application for the review dashboard.
func (s *ApplicationService) ListAllApplications(ctx context.Context) ([]models.Application, error) {
	return s.applicationRepo.ListAll(ctx)
}

// UpdateApplicationStatus moves an application to any status in the allowed
// set. No transition ordering is enforced.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id uint, status string) (*models.Application, error) {
	if !allowedStatusUpdates[status] {
		return nil, models.NewValidationError("Invalid status value")
	}
	application, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if internship, err := s.internshipRepo.GetByID(ctx, application.InternshipID); err == nil {
		application.Internship = internship
	}
	return application, nil
}
