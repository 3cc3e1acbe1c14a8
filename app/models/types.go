package models

import "time"

// User represents a registered account. HashedPassword never leaves the
// process in API responses.
type User struct {
	ID             int       `json:"id" validate:"gte=0"`
	Username       string    `json:"username" validate:"required,min=3,max=30"`
	DisplayName    string    `json:"displayName,omitempty" validate:"omitempty,min=1,max=50"`
	Email          string    `json:"email,omitempty" validate:"omitempty,min=5,max=100"`
	Phone          string    `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	HashedPassword string    `json:"-"`
	EmailVerified  bool      `json:"emailVerified"`
	PhoneVerified  bool      `json:"phoneVerified"`
	CreatedAt      time.Time `json:"createdAt" validate:"required"`
}

// Post represents a journal entry authored by a user.
type Post struct {
	ID             int        `json:"id" validate:"gte=0"`
	AuthorID       int        `json:"authorId" validate:"required,gte=0"`
	AuthorUsername string     `json:"authorUsername" validate:"required"`
	Title          string     `json:"title" validate:"required,max=100"`
	Content        string     `json:"content" validate:"required,max=5000"`
	CreatedAt      time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
