package server

import (
	"skillbridge/internal/models"
	"skillbridge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// profileRequest is the writable profile payload shared by create and update.
type profileRequest struct {
	Bio        *string                  `json:"bio"`
	Phone      *string                  `json:"phone"`
	Location   *string                  `json:"location"`
	Education  []models.EducationEntry  `json:"education"`
	Experience []models.ExperienceEntry `json:"experience"`
	Skills     []string                 `json:"skills"`
	Projects   []models.ProjectEntry    `json:"projects"`
	Resume     *string                  `json:"resume"`
	Portfolio  *string                  `json:"portfolio"`
	Linkedin   *string                  `json:"linkedin"`
	Github     *string                  `json:"github"`
}

func (r profileRequest) toInput() service.ProfileInput {
	return service.ProfileInput{
		Bio:        r.Bio,
		Phone:      r.Phone,
		Location:   r.Location,
		Education:  r.Education,
		Experience: r.Experience,
		Skills:     r.Skills,
		Projects:   r.Projects,
		Resume:     r.Resume,
		Portfolio:  r.Portfolio,
		Linkedin:   r.Linkedin,
		Github:     r.Github,
	}
}

// GetMyProfile handles GET /api/profile/me
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=models.Profile}
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMyProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

// CreateProfile handles POST /api/profile
// @Summary Create profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body profileRequest true "Profile fields"
// @Success 201 {object} object{success=bool,data=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Router /profile [post]
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.CreateProfile(c.Context(), currentUserID(c), req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Profile created successfully",
		"data":    profile,
	})
}

// UpsertProfile handles PUT /api/profile
// @Summary Update or create profile
// @Description Updates the caller's profile, creating it when absent
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body profileRequest true "Fields to update"
// @Success 200 {object} object{success=bool,data=models.Profile}
// @Success 201 {object} object{success=bool,data=models.Profile}
// @Router /profile [put]
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, created, err := s.profileService.UpsertProfile(c.Context(), currentUserID(c), req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	status := fiber.StatusOK
	message := "Profile updated successfully"
	if created {
		status = fiber.StatusCreated
		message = "Profile created successfully"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    profile,
	})
}

// DeleteProfile handles DELETE /api/profile
// @Summary Delete profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /profile [delete]
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	if err := s.profileService.DeleteProfile(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile deleted successfully",
	})
}
