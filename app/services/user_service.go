package services

import (
	"time"

	"smriti/app/repositories"
)

// Profile is a user's public profile with statistics.
type Profile struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
	PostCount   int       `json:"postCount"`
}

// UserService handles profile queries
type UserService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// Profile returns the profile of the given user along with their post count
func (s *UserService) Profile(userID int) (*Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByAuthor(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Phone:       user.Phone,
		JoinedAt:    user.CreatedAt,
		PostCount:   count,
	}, nil
}
