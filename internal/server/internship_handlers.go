package server

import (
	"time"

	"skillbridge/internal/models"
	"skillbridge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// internshipRequest is the writable listing payload shared by create and update.
type internshipRequest struct {
	Title               *string  `json:"title"`
	Company             *string  `json:"company"`
	Description         *string  `json:"description"`
	Skills              []string `json:"skills"`
	Country             *string  `json:"country"`
	Duration            *string  `json:"duration"`
	Stipend             *string  `json:"stipend"`
	ApplicationDeadline *string  `json:"applicationDeadline"`
	IsActive            *bool    `json:"isActive"`
}

func (r internshipRequest) toInput() (service.InternshipInput, error) {
	in := service.InternshipInput{
		Title:       r.Title,
		Company:     r.Company,
		Description: r.Description,
		Skills:      r.Skills,
		Country:     r.Country,
		Duration:    r.Duration,
		Stipend:     r.Stipend,
		IsActive:    r.IsActive,
	}
	if r.ApplicationDeadline != nil {
		deadline, err := parseDeadline(*r.ApplicationDeadline)
		if err != nil {
			return in, models.NewValidationError("Valid application deadline is required")
		}
		in.ApplicationDeadline = &deadline
	}
	return in, nil
}

// parseDeadline accepts RFC 3339 timestamps and bare dates.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// GetInternships handles GET /api/internships
// @Summary List internships
// @Description Browse active listings with filters and pagination
// @Tags internships
// @Produce json
// @Param skill query string false "Skill filter (substring)"
// @Param country query string false "Country filter (substring)"
// @Param duration query string false "Duration filter (substring)"
// @Param search query string false "Search over title, company, description"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} object{success=bool,count=int,total=int,page=int,pages=int,data=[]models.Internship}
// @Router /internships [get]
func (s *Server) GetInternships(c *fiber.Ctx) error {
	page := parsePagination(c)

	result, err := s.internshipService.ListInternships(c.Context(), service.ListInternshipsInput{
		Skill:    c.Query("skill"),
		Country:  c.Query("country"),
		Duration: c.Query("duration"),
		Search:   c.Query("search"),
		Page:     page.Page,
		Limit:    page.Limit,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(result.Internships),
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
		"data":    result.Internships,
	})
}

// GetInternship handles GET /api/internships/:id
// @Summary Get internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} object{success=bool,data=models.Internship}
// @Failure 404 {object} models.ErrorResponse
// @Router /internships/{id} [get]
func (s *Server) GetInternship(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	internship, err := s.internshipService.GetInternship(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    internship,
	})
}

// CreateInternship handles POST /api/internships (admin)
// @Summary Create internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body internshipRequest true "Listing fields"
// @Success 201 {object} object{success=bool,data=models.Internship}
// @Failure 400 {object} models.ErrorResponse
// @Router /internships [post]
func (s *Server) CreateInternship(c *fiber.Ctx) error {
	var req internshipRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	in, err := req.toInput()
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	internship, err := s.internshipService.CreateInternship(c.Context(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Internship created successfully",
		"data":    internship,
	})
}

// UpdateInternship handles PUT /api/internships/:id (admin)
// @Summary Update internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body internshipRequest true "Fields to update"
// @Success 200 {object} object{success=bool,data=models.Internship}
// @Failure 404 {object} models.ErrorResponse
// @Router /internships/{id} [put]
func (s *Server) UpdateInternship(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req internshipRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	in, err := req.toInput()
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	internship, err := s.internshipService.UpdateInternship(c.Context(), id, in)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Internship updated successfully",
		"data":    internship,
	})
}

// DeleteInternship handles DELETE /api/internships/:id (admin)
// @Summary Delete internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /internships/{id} [delete]
func (s *Server) DeleteInternship(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.internshipService.DeleteInternship(c.Context(), id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Internship deleted successfully",
	})
}
