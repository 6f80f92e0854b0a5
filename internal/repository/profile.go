package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for developer profiles
// and their experience/education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Replace(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, entry *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, entryID uint) (bool, error)
	AddEducation(ctx context.Context, entry *models.Education) error
	RemoveEducation(ctx context.Context, profileID, entryID uint) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withDetails preloads the owning user and the entry lists. Entries are
// ordered newest-insert-first to keep the most-recent-first contract.
func (r *profileRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.withDetails(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.withDetails(r.db.WithContext(ctx)).First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.withDetails(r.db.WithContext(ctx)).
		Order("profiles.created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Replace overwrites every profile-owned scalar field of an existing row.
// Select lists the columns explicitly so zero values overwrite too.
func (r *profileRepository) Replace(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Select("company", "website", "location", "designation", "skills", "bio",
			"github_username", "social_youtube", "social_facebook", "social_twitter",
			"social_linkedin", "social_instagram").
		Updates(profile).Error
}

func (r *profileRepository) AddExperience(ctx context.Context, entry *models.Experience) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RemoveExperience deletes the entry by ID scoped to the given profile.
// It reports whether a row was actually removed.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, entryID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&models.Experience{})
	return result.RowsAffected > 0, result.Error
}

func (r *profileRepository) AddEducation(ctx context.Context, entry *models.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RemoveEducation deletes the entry by ID scoped to the given profile.
func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, entryID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&models.Education{})
	return result.RowsAffected > 0, result.Error
}
