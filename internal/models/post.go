package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the DevConnect application.
// AuthorName and AuthorAvatar are snapshots of the author taken at creation
// time; they are eventually-stale cache fields and never resynchronized.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID" json:"-"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	Image        string         `gorm:"not null" json:"image"`
	AuthorName   string         `gorm:"not null" json:"name"`
	AuthorAvatar string         `gorm:"not null" json:"avatar"`
	Likes        []Like         `gorm:"foreignKey:PostID" json:"likes"`
	Comments     []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like records one user liking one post.
// The (PostID, UserID) pair is unique, which keeps the at-most-one-like
// invariant intact even under concurrent writers.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a comment on a post, carrying the same author snapshot
// fields as Post.
type Comment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	PostID       uint           `gorm:"not null;index" json:"post_id"`
	UserID       uint           `gorm:"not null" json:"user"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	AuthorName   string         `gorm:"not null" json:"name"`
	AuthorAvatar string         `gorm:"not null" json:"avatar"`
	CreatedAt    time.Time      `json:"date"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
