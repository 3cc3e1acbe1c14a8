package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors carry the exact messages the API returns; controllers map
// them to HTTP status codes by identity.
var (
	ErrUsernameTaken        = errors.New("Username is already taken")
	ErrEmailRegistered      = errors.New("Email is already registered")
	ErrContactRequired      = errors.New("Either email or phone number is required")
	ErrIdentifierRequired   = errors.New("Username, email, or phone is required")
	ErrIncorrectCredentials = errors.New("Incorrect credentials")
	ErrNotPostAuthor        = errors.New("You can only modify your own posts")
)

// ValidationError wraps a field-validation failure message. The message is
// user-facing data, taken verbatim from the validation rule that rejected
// the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a field-validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// fieldMessages maps entity field names onto the message shown when the
// field fails its struct-tag checks.
var fieldMessages = map[string]string{
	"Username":    "Username must be 3-30 characters (letters, numbers, underscore only)",
	"DisplayName": "Display name must be 50 characters or less",
	"Email":       "Invalid email format",
	"Phone":       "Invalid phone number",
	"Title":       "Title must be 100 characters or less",
	"Content":     "Content must be 5000 characters or less",
}

// asValidationError converts struct-tag failures on user-supplied fields
// into user-facing validation errors. Anything else passes through
// unchanged and stays an internal error.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].Field()]; ok {
			return &ValidationError{Message: msg}
		}
	}
	return err
}
