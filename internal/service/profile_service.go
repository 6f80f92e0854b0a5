package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService handles developer profiles and their experience and
// education entries. Every write is scoped to the caller's own profile.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries the twelve required profile form fields.
// Skills arrives as a comma-separated string, matching the form contract.
type UpsertProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Designation    string `json:"designation"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceInput carries a work history entry form.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput carries a schooling entry form.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// NewProfileService returns a ProfileService bound to the given repositories.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getExisting(ctx, userID)
}

// GetByUser returns any user's profile; a public read.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile for user", userID)
	}
	return profile, nil
}

// GetByID returns a profile by its own identifier; a public read.
func (s *ProfileService) GetByID(ctx context.Context, profileID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile", profileID)
	}
	return profile, nil
}

// ListAll returns every profile with its author joined; a public read.
func (s *ProfileService) ListAll(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// Upsert creates the caller's profile or fully replaces an existing one.
// All twelve fields must be present; the error lists every missing field.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in UpsertProfileInput) (*models.Profile, error) {
	if err := requireFields(
		field{"company", in.Company},
		field{"website", in.Website},
		field{"location", in.Location},
		field{"designation", in.Designation},
		field{"skills", in.Skills},
		field{"bio", in.Bio},
		field{"githubusername", in.GithubUsername},
		field{"youtube", in.Youtube},
		field{"facebook", in.Facebook},
		field{"twitter", in.Twitter},
		field{"linkedin", in.Linkedin},
		field{"instagram", in.Instagram},
	); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:         userID,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Designation:    in.Designation,
		Skills:         splitSkills(in.Skills),
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Social: models.Social{
			Youtube:   in.Youtube,
			Facebook:  in.Facebook,
			Twitter:   in.Twitter,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
		},
	}

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if existing == nil {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, models.NewInternalError(err)
		}
	} else {
		profile.ID = existing.ID
		if err := s.profileRepo.Replace(ctx, profile); err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	return s.getExisting(ctx, userID)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	if err := requireFields(
		field{"title", in.Title},
		field{"company", in.Company},
		field{"location", in.Location},
		field{"from", in.From},
		field{"description", in.Description},
	); err != nil {
		return nil, err
	}

	profile, err := s.getExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, entry); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.getExisting(ctx, userID)
}

// RemoveExperience deletes the addressed entry from the caller's own
// profile. Entries of other profiles are unreachable by construction.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID uint) (*models.Profile, error) {
	profile, err := s.getExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.profileRepo.RemoveExperience(ctx, profile.ID, entryID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !removed {
		return nil, models.NewNotFoundError("Experience", entryID)
	}

	return s.getExisting(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	if err := requireFields(
		field{"school", in.School},
		field{"degree", in.Degree},
		field{"fieldOfStudy", in.FieldOfStudy},
		field{"from", in.From},
		field{"description", in.Description},
	); err != nil {
		return nil, err
	}

	profile, err := s.getExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, entry); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.getExisting(ctx, userID)
}

// RemoveEducation deletes the addressed entry from the caller's own profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID uint) (*models.Profile, error) {
	profile, err := s.getExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.profileRepo.RemoveEducation(ctx, profile.ID, entryID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !removed {
		return nil, models.NewNotFoundError("Education", entryID)
	}

	return s.getExisting(ctx, userID)
}

// DeleteAccount removes the addressed user with profile, posts, comments,
// and likes. Only the account owner may delete it.
func (s *ProfileService) DeleteAccount(ctx context.Context, callerID, targetUserID uint) error {
	if callerID != targetUserID {
		return models.NewForbiddenError("You can only delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if user == nil {
		return models.NewNotFoundError("User", targetUserID)
	}

	if err := s.userRepo.DeleteAccount(ctx, targetUserID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// getExisting loads the caller's profile or fails with NotFound.
func (s *ProfileService) getExisting(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile for user", userID)
	}
	return profile, nil
}
