package services

import (
	"errors"
	"fmt"
	"strings"

	"smriti/app/models"
	"smriti/app/repositories"
	"smriti/app/security"
	"smriti/app/validation"
)

// SignupRequest carries the fields of a registration form.
type SignupRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
}

// LoginRequest carries the fields of a login form. Any one identifier is
// enough; priority is username, then email, then phone.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthService handles registration, login and credential changes
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *security.TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup validates the registration form, creates the user and returns it
// together with a signed access token.
func (s *AuthService) Signup(req SignupRequest) (*models.User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	if result := validation.EvaluateRequired(validation.Username, username); !result.OK() {
		return nil, "", &ValidationError{Message: result.Message}
	}
	if result := validation.EvaluateRequired(validation.Password, req.Password); !result.OK() {
		return nil, "", &ValidationError{Message: result.Message}
	}
	if email == "" && phone == "" {
		return nil, "", ErrContactRequired
	}
	if email != "" {
		if result := validation.Evaluate(validation.Email, email); !result.OK() {
			return nil, "", &ValidationError{Message: result.Message}
		}
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to prepare credentials: %v", err)
	}

	user := &models.User{
		Username:       username,
		DisplayName:    strings.TrimSpace(req.DisplayName),
		Email:          email,
		Phone:          phone,
		HashedPassword: hash,
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, "", asValidationError(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return nil, "", ErrUsernameTaken
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return nil, "", ErrEmailRegistered
		}
		return nil, "", err
	}

	token, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by username or email and returns the user with a
// fresh access token. Lookup and password failures are indistinguishable to
// the caller.
func (s *AuthService) Login(req LoginRequest) (*models.User, string, error) {
	identifier := strings.TrimSpace(req.Username)
	if identifier == "" {
		identifier = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if identifier == "" {
		identifier = strings.TrimSpace(req.Phone)
	}
	if identifier == "" {
		return nil, "", ErrIdentifierRequired
	}
	if req.Password == "" {
		return nil, "", &ValidationError{Message: "Password is required"}
	}

	user, err := s.userRepo.GetByUsername(identifier)
	if errors.Is(err, repositories.ErrNotFound) {
		user, err = s.userRepo.GetByEmail(identifier)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, "", ErrIncorrectCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !security.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, "", ErrIncorrectCredentials
	}

	token, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser loads a user by ID.
func (s *AuthService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// CheckUsername reports whether a username is still available. Usernames
// that fail the format rule are rejected outright.
func (s *AuthService) CheckUsername(username string) (bool, error) {
	if result := validation.Evaluate(validation.Username, username); !result.OK() {
		return false, &ValidationError{Message: result.Message}
	}

	_, err := s.userRepo.GetByUsername(username)
	if errors.Is(err, repositories.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// ChangePassword verifies the current password and replaces it with the new
// one after the usual form checks.
func (s *AuthService) ChangePassword(userID int, current, newPassword, confirm string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if !security.VerifyPassword(current, user.HashedPassword) {
		return ErrIncorrectCredentials
	}
	if result := validation.EvaluateRequired(validation.Password, newPassword); !result.OK() {
		return &ValidationError{Message: result.Message}
	}
	if result := validation.PasswordsMatch(newPassword, confirm); !result.OK() {
		return &ValidationError{Message: result.Message}
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to prepare credentials: %v", err)
	}
	user.HashedPassword = hash

	return s.userRepo.Update(user)
}
