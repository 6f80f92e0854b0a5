package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringList stores an ordered list of strings in a single text column.
// It keeps the skills column portable between Postgres and the sqlite
// databases used in tests.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Social holds the optional social media links of a profile.
type Social struct {
	Youtube   string `json:"youtube"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Profile is the one-per-user developer profile. It extends a User with
// career details; the owning user is the only writer.
type Profile struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"user"`
	Company        string         `gorm:"not null" json:"company"`
	Website        string         `gorm:"not null" json:"website"`
	Location       string         `gorm:"not null" json:"location"`
	Designation    string         `gorm:"not null" json:"designation"`
	Skills         StringList     `gorm:"type:text;not null" json:"skills"`
	Bio            string         `gorm:"not null" json:"bio"`
	GithubUsername string         `gorm:"not null" json:"githubusername"`
	Social         Social         `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience   `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education    `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Experience is a work history entry of a profile. Entries are listed
// most-recent-first and addressed by their own ID for deletion.
type Experience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"profile_id"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `gorm:"not null" json:"location"`
	From        string    `gorm:"not null" json:"from"`
	To          string    `json:"to"`
	Current     bool      `gorm:"default:false" json:"current"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education is a schooling entry of a profile, shaped like Experience.
type Education struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"not null;index" json:"profile_id"`
	School       string    `gorm:"not null" json:"school"`
	Degree       string    `gorm:"not null" json:"degree"`
	FieldOfStudy string    `gorm:"not null" json:"fieldOfStudy"`
	From         string    `gorm:"not null" json:"from"`
	To           string    `json:"to"`
	Current      bool      `gorm:"default:false" json:"current"`
	Description  string    `gorm:"not null" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
