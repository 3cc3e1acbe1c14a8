package services

import (
	"smriti/app/models"
	"smriti/app/repositories"
	"smriti/app/validation"
)

// Pagination defaults for post listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PostService handles business logic for posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a new post for the given author with validation
func (s *PostService) CreatePost(authorID int, title, content string) (*models.Post, error) {
	if err := checkPostFields(title, content); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		Title:          title,
		Content:        content,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a paginated list of posts
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	limit, offset := clampPage(page, perPage)
	return s.postRepo.List(limit, offset)
}

// ListPostsByUser retrieves a paginated list of one user's posts
func (s *PostService) ListPostsByUser(userID, page, perPage int) ([]*models.Post, error) {
	limit, offset := clampPage(page, perPage)
	return s.postRepo.ListByAuthor(userID, limit, offset)
}

// UpdatePost updates a post's title and content. Only the author may update
// a post.
func (s *PostService) UpdatePost(userID, postID int, title, content string) (*models.Post, error) {
	if err := checkPostFields(title, content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}

	post.Title = title
	post.Content = content
	post.Touch()

	if err := post.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post. Only the author may delete a post.
func (s *PostService) DeletePost(userID, postID int) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrNotPostAuthor
	}
	return s.postRepo.Delete(postID)
}

// checkPostFields runs the form-level validation rules on title and content
func checkPostFields(title, content string) error {
	if result := validation.EvaluateRequired(validation.PostTitle, title); !result.OK() {
		return &ValidationError{Message: result.Message}
	}
	if result := validation.EvaluateRequired(validation.PostContent, content); !result.OK() {
		return &ValidationError{Message: result.Message}
	}
	return nil
}

// clampPage converts page/perPage into limit/offset, applying the listing
// defaults and cap.
func clampPage(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}
	return perPage, (page - 1) * perPage
}
