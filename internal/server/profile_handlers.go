package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOwn(c.Context(), callerID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST and PUT /api/profiles
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req service.UpsertProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.Context(), callerID(c), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// GetAllProfiles handles GET /api/profiles/all
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListAll(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profiles/users/:userId
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByID handles GET /api/profiles/:developerId
func (s *Server) GetProfileByID(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "developerId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByID(c.Context(), profileID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles PUT /api/profiles/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req service.ExperienceInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.Context(), callerID(c), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// RemoveExperience handles DELETE /api/profiles/experience/:experienceId
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	entryID, err := s.parseID(c, "experienceId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveExperience(c.Context(), callerID(c), entryID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profiles/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req service.EducationInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.Context(), callerID(c), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// RemoveEducation handles DELETE /api/profiles/education/:eduId
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	entryID, err := s.parseID(c, "eduId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveEducation(c.Context(), callerID(c), entryID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profiles/users/:userId
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.profileService.DeleteAccount(c.Context(), callerID(c), userID); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}
