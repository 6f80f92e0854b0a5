// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// demoPassword is the plain-text password every seeded account gets, so
// developers can log in as any demo user.
const demoPassword = "password123"

var skillPool = []string{
	"Go", "TypeScript", "JavaScript", "Python", "Rust", "SQL", "React",
	"Vue", "Docker", "Kubernetes", "Postgres", "Redis", "GraphQL", "gRPC",
	"Terraform", "AWS", "GCP", "Linux", "Git", "CI/CD",
}

var designations = []string{
	"Junior Developer", "Software Engineer", "Senior Engineer",
	"Staff Engineer", "Tech Lead", "Engineering Manager",
	"Student or Learning", "Instructor", "Freelancer",
}

var degrees = []string{
	"BSc", "MSc", "BA", "Bootcamp Certificate", "Associate Degree",
}

var fieldsOfStudy = []string{
	"Computer Science", "Software Engineering", "Information Systems",
	"Mathematics", "Electrical Engineering", "Web Development",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, rand: rand.New(rand.NewSource(seed))}
}

// CreateUser constructs and persists a sample user. All seeded users share
// the demo password. Optional override functions may modify the generated
// user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(gofakeit.Email())
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), email),
		Password: string(hash),
		Avatar:   service.GravatarURL(email),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile builds a developer profile for the given user, with a few
// experience and education entries attached.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Designation:    designations[f.rand.Intn(len(designations))],
		Skills:         f.randomSkills(),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Social: models.Social{
			Youtube:   "https://youtube.com/@" + strings.ToLower(gofakeit.Username()),
			Facebook:  "https://facebook.com/" + strings.ToLower(gofakeit.Username()),
			Twitter:   "https://twitter.com/" + strings.ToLower(gofakeit.Username()),
			Linkedin:  "https://linkedin.com/in/" + strings.ToLower(gofakeit.Username()),
			Instagram: "https://instagram.com/" + strings.ToLower(gofakeit.Username()),
		},
	}
	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+f.rand.Intn(3); i++ {
		if err := f.db.Create(f.buildExperience(profile.ID)).Error; err != nil {
			return nil, err
		}
	}
	for i := 0; i < 1+f.rand.Intn(2); i++ {
		if err := f.db.Create(f.buildEducation(profile.ID)).Error; err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (f *Factory) randomSkills() models.StringList {
	count := 3 + f.rand.Intn(5)
	picked := make(models.StringList, 0, count)
	seen := make(map[string]bool)
	for len(picked) < count {
		skill := skillPool[f.rand.Intn(len(skillPool))]
		if !seen[skill] {
			seen[skill] = true
			picked = append(picked, skill)
		}
	}
	return picked
}

func (f *Factory) buildExperience(profileID uint) *models.Experience {
	fromYear := 2012 + f.rand.Intn(10)
	current := f.rand.Intn(3) == 0
	to := ""
	if !current {
		to = fmt.Sprintf("%d-06-01", fromYear+1+f.rand.Intn(3))
	}
	return &models.Experience{
		ProfileID:   profileID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        fmt.Sprintf("%d-01-15", fromYear),
		To:          to,
		Current:     current,
		Description: gofakeit.Sentence(15),
	}
}

func (f *Factory) buildEducation(profileID uint) *models.Education {
	fromYear := 2008 + f.rand.Intn(10)
	return &models.Education{
		ProfileID:    profileID,
		School:       gofakeit.Company() + " University",
		Degree:       degrees[f.rand.Intn(len(degrees))],
		FieldOfStudy: fieldsOfStudy[f.rand.Intn(len(fieldsOfStudy))],
		From:         fmt.Sprintf("%d-09-01", fromYear),
		To:           fmt.Sprintf("%d-06-30", fromYear+3),
		Description:  gofakeit.Sentence(10),
	}
}

// CreatePost constructs and persists a post authored by the given user,
// with the author's name and avatar snapshotted as the services do.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:       user.ID,
		Text:         gofakeit.Paragraph(1, 2, 8, " "),
		Image:        fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		AuthorName:   user.Name,
		AuthorAvatar: user.Avatar,
	}
	// Realistic created_at spread over the last 90 days.
	daysBack := f.rand.Intn(90)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(f.rand.Intn(24))*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment attaches a generated comment from the given user to a post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:       post.ID,
		UserID:       user.ID,
		Text:         gofakeit.Sentence(8),
		AuthorName:   user.Name,
		AuthorAvatar: user.Avatar,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records a like; duplicate (post, user) pairs are skipped.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	var count int64
	if err := f.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
}
