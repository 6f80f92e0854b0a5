package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
)

// PostService handles the feed: posts, likes, and ownership rules.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the new-post form fields.
type CreatePostInput struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// NewPostService returns a PostService bound to the given repositories.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create stores a new post, snapshotting the author's name and avatar so
// the feed renders without joining back to the users table.
func (s *PostService) Create(ctx context.Context, userID uint, in CreatePostInput) (*models.Post, error) {
	if err := requireFields(field{"text", in.Text}, field{"image", in.Image}); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", userID)
	}

	post := &models.Post{
		UserID:       userID,
		Text:         in.Text,
		Image:        in.Image,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.Get(ctx, post.ID)
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Get returns a single post with its likes and comments.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// Delete removes a post and its likes and comments. Only the author may
// delete it.
func (s *PostService) Delete(ctx context.Context, callerID, postID uint) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return models.NewForbiddenError("User not authorized")
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Like records the caller's like on a post. Liking twice is rejected; the
// insert itself is the uniqueness check, so concurrent likes cannot race.
func (s *PostService) Like(ctx context.Context, callerID, postID uint) ([]models.Like, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	inserted, err := s.postRepo.Like(ctx, callerID, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !inserted {
		return nil, models.NewValidationError("Post has already been liked")
	}

	observability.LikesTotal.WithLabelValues("like").Inc()
	return s.currentLikes(ctx, postID)
}

// Unlike removes the caller's like. Unliking a post that was never liked
// is rejected.
func (s *PostService) Unlike(ctx context.Context, callerID, postID uint) ([]models.Like, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	removed, err := s.postRepo.Unlike(ctx, callerID, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !removed {
		return nil, models.NewValidationError("Post has not yet been liked")
	}

	observability.LikesTotal.WithLabelValues("unlike").Inc()
	return s.currentLikes(ctx, postID)
}

func (s *PostService) currentLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Likes == nil {
		return []models.Like{}, nil
	}
	return post.Likes, nil
}
