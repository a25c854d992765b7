package server

import (
	"skillbridge/internal/models"
	"skillbridge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitApplication handles POST /api/applications
// @Summary Submit application
// @Description Apply to an active listing before its deadline
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{internshipId=int,coverLetter=string,resume=string} true "Application fields"
// @Success 201 {object} object{success=bool,data=models.Application}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /applications [post]
func (s *Server) SubmitApplication(c *fiber.Ctx) error {
	var req struct {
		InternshipID uint   `json:"internshipId"`
		CoverLetter  string `json:"coverLetter"`
		Resume       string `json:"resume"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, err := s.applicationService.SubmitApplication(c.Context(), service.SubmitApplicationInput{
		StudentID:    currentUserID(c),
		InternshipID: req.InternshipID,
		CoverLetter:  req.CoverLetter,
		Resume:       req.Resume,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Application submitted successfully",
		"data":    application,
	})
}

// GetMyApplications handles GET /api/applications/my-applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,count=int,data=[]models.Application}
// @Router /applications/my-applications [get]
func (s *Server) GetMyApplications(c *fiber.Ctx) error {
	applications, err := s.applicationService.ListMyApplications(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(applications),
		"data":    applications,
	})
}

// GetAllApplications handles GET /api/applications (admin)
// @Summary List all applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,count=int,data=[]models.Application}
// @Failure 403 {object} models.ErrorResponse
// @Router /applications [get]
func (s *Server) GetAllApplications(c *fiber.Ctx) error {
	applications, err := s.applicationService.ListAllApplications(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(applications),
		"data":    applications,
	})
}

// UpdateApplicationStatus handles PUT /api/applications/:id/status (admin)
// @Summary Update application status
// @Description Accepted statuses: pending, reviewed, accepted, rejected
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body object{status=string} true "New status"
// @Success 200 {object} object{success=bool,data=models.Application}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /applications/{id}/status [put]
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, err := s.applicationService.UpdateApplicationStatus(c.Context(), id, req.Status)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application status updated successfully",
		"data":    application,
	})
}
