package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// CommentService handles comments on posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// CommentInput carries the comment form fields.
type CommentInput struct {
	Text string `json:"text"`
}

// NewCommentService returns a CommentService bound to the given repositories.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo, userRepo: userRepo}
}

// Add attaches a comment to a post with the commenter's name and avatar
// snapshotted, and returns the post's updated comment list, newest first.
func (s *CommentService) Add(ctx context.Context, userID, postID uint, in CommentInput) ([]models.Comment, error) {
	if err := requireFields(field{"text", in.Text}); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", userID)
	}

	comment := &models.Comment{
		PostID:       postID,
		UserID:       userID,
		Text:         in.Text,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.currentComments(ctx, postID)
}

// Delete removes a single comment from a post. The comment must belong to
// the addressed post, and only its author may delete it.
func (s *CommentService) Delete(ctx context.Context, callerID, postID, commentID uint) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if comment == nil || comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	if comment.UserID != callerID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.currentComments(ctx, postID)
}

func (s *CommentService) currentComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	if post.Comments == nil {
		return []models.Comment{}, nil
	}
	return post.Comments, nil
}
