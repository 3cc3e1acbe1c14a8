package repositories

import (
	"testing"
	"time"

	"smriti/app/models"

	"github.com/stretchr/testify/assert"
)

func newTestUser(username, email string) *models.User {
	return &models.User{
		Username:       username,
		Email:          email,
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:      time.Now(),
	}
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := newTestUser("johndoe", "john@example.com")

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.Greater(t, user.ID, 0)

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "johndoe", retrieved.Username)
		assert.Equal(t, "john@example.com", retrieved.Email)
	})

	t.Run("get by username", func(t *testing.T) {
		user := newTestUser("janedoe", "jane@example.com")
		assert.NoError(t, repo.Create(user))

		retrieved, err := repo.GetByUsername("janedoe")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)
	})

	t.Run("get by email is case insensitive", func(t *testing.T) {
		user := newTestUser("casey", "Casey@Example.com")
		assert.NoError(t, repo.Create(user))

		retrieved, err := repo.GetByEmail("casey@example.com")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		assert.NoError(t, repo.Create(newTestUser("taken", "first@example.com")))

		err := repo.Create(newTestUser("taken", "second@example.com"))
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		assert.NoError(t, repo.Create(newTestUser("emailone", "shared@example.com")))

		err := repo.Create(newTestUser("emailtwo", "shared@example.com"))
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.GetByID(99999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByUsername("nobody")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update user", func(t *testing.T) {
		user := newTestUser("updateme", "updateme@example.com")
		assert.NoError(t, repo.Create(user))

		user.DisplayName = "Updated Name"
		assert.NoError(t, repo.Update(user))

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Updated Name", retrieved.DisplayName)
	})

	t.Run("update moves username index", func(t *testing.T) {
		user := newTestUser("oldname", "oldname@example.com")
		assert.NoError(t, repo.Create(user))

		user.Username = "newname"
		assert.NoError(t, repo.Update(user))

		_, err := repo.GetByUsername("oldname")
		assert.ErrorIs(t, err, ErrNotFound)

		retrieved, err := repo.GetByUsername("newname")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)
	})

	t.Run("update rejects taken username", func(t *testing.T) {
		assert.NoError(t, repo.Create(newTestUser("holder", "holder@example.com")))
		user := newTestUser("mover", "mover@example.com")
		assert.NoError(t, repo.Create(user))

		user.Username = "holder"
		assert.ErrorIs(t, repo.Update(user), ErrDuplicateUsername)
	})

	t.Run("update missing user", func(t *testing.T) {
		user := newTestUser("ghost", "ghost@example.com")
		user.ID = 99999
		assert.ErrorIs(t, repo.Update(user), ErrNotFound)
	})
}
