package service

import (
	"context"
	"errors"

	"devconnect/internal/models"
)

// In-memory repository fakes. Each one implements just enough of its
// interface for the service under test, backed by maps and slices.

type fakeUserRepo struct {
	users   map[uint]*models.User
	nextID  uint
	deleted []uint
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserRepo) add(name, email, passwordHash string) *models.User {
	u := &models.User{Name: name, Email: email, Password: passwordHash, Avatar: "https://example.com/a.png"}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) DeleteAccount(_ context.Context, userID uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

type likeKey struct{ postID, userID uint }

type fakePostRepo struct {
	posts    map[uint]*models.Post
	likes    map[likeKey]bool
	comments map[uint][]models.Comment
	nextID   uint
	err      error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:    make(map[uint]*models.Post),
		likes:    make(map[likeKey]bool),
		comments: make(map[uint][]models.Comment),
		nextID:   1,
	}
}

func (f *fakePostRepo) add(userID uint, text string) *models.Post {
	p := &models.Post{UserID: userID, Text: text, AuthorName: "author", AuthorAvatar: "avatar"}
	p.ID = f.nextID
	f.nextID++
	f.posts[p.ID] = p
	return p
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	post.ID = f.nextID
	f.nextID++
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id uint) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	post := *stored
	post.Likes = []models.Like{}
	for key := range f.likes {
		if key.postID == id {
			post.Likes = append(post.Likes, models.Like{PostID: key.postID, UserID: key.userID})
		}
	}
	post.Comments = append([]models.Comment{}, f.comments[id]...)
	return &post, nil
}

func (f *fakePostRepo) List(ctx context.Context) ([]*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Post
	for id := range f.posts {
		post, _ := f.GetByID(ctx, id)
		out = append(out, post)
	}
	return out, nil
}

func (f *fakePostRepo) Delete(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	delete(f.posts, id)
	delete(f.comments, id)
	for key := range f.likes {
		if key.postID == id {
			delete(f.likes, key)
		}
	}
	return nil
}

func (f *fakePostRepo) Like(_ context.Context, userID, postID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := likeKey{postID, userID}
	if f.likes[key] {
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakePostRepo) Unlike(_ context.Context, userID, postID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := likeKey{postID, userID}
	if !f.likes[key] {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

type fakeCommentRepo struct {
	posts   *fakePostRepo
	byID    map[uint]*models.Comment
	nextID  uint
	err     error
	deleted []uint
}

func newFakeCommentRepo(posts *fakePostRepo) *fakeCommentRepo {
	return &fakeCommentRepo{posts: posts, byID: make(map[uint]*models.Comment), nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	if f.err != nil {
		return f.err
	}
	comment.ID = f.nextID
	f.nextID++
	f.byID[comment.ID] = comment
	f.posts.comments[comment.PostID] = append([]models.Comment{*comment}, f.posts.comments[comment.PostID]...)
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id uint) (*models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	comment, ok := f.byID[id]
	if !ok {
		return nil
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	remaining := f.posts.comments[comment.PostID][:0]
	for _, c := range f.posts.comments[comment.PostID] {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	f.posts.comments[comment.PostID] = remaining
	return nil
}

type fakeProfileRepo struct {
	profiles map[uint]*models.Profile // keyed by profile ID
	nextID   uint
	entryID  uint
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uint]*models.Profile), nextID: 1, entryID: 1}
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uint) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) List(_ context.Context) ([]models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Profile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.profiles {
		if p.UserID == profile.UserID {
			return errors.New("UNIQUE constraint failed: profiles.user_id")
		}
	}
	profile.ID = f.nextID
	f.nextID++
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) Replace(_ context.Context, profile *models.Profile) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.profiles[profile.ID]
	if !ok {
		return nil
	}
	profile.UserID = existing.UserID
	profile.Experience = existing.Experience
	profile.Education = existing.Education
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) AddExperience(_ context.Context, entry *models.Experience) error {
	if f.err != nil {
		return f.err
	}
	p, ok := f.profiles[entry.ProfileID]
	if !ok {
		return errors.New("no such profile")
	}
	entry.ID = f.entryID
	f.entryID++
	p.Experience = append([]models.Experience{*entry}, p.Experience...)
	return nil
}

func (f *fakeProfileRepo) RemoveExperience(_ context.Context, profileID, entryID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	p, ok := f.profiles[profileID]
	if !ok {
		return false, nil
	}
	for i, e := range p.Experience {
		if e.ID == entryID {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileRepo) AddEducation(_ context.Context, entry *models.Education) error {
	if f.err != nil {
		return f.err
	}
	p, ok := f.profiles[entry.ProfileID]
	if !ok {
		return errors.New("no such profile")
	}
	entry.ID = f.entryID
	f.entryID++
	p.Education = append([]models.Education{*entry}, p.Education...)
	return nil
}

func (f *fakeProfileRepo) RemoveEducation(_ context.Context, profileID, entryID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	p, ok := f.profiles[profileID]
	if !ok {
		return false, nil
	}
	for i, e := range p.Education {
		if e.ID == entryID {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
