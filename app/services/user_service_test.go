package services

import (
	"testing"

	"smriti/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	userRepo := newMockUserRepo()
	postRepo := newMockPostRepo()
	userSvc := NewUserService(userRepo, postRepo)
	postSvc := NewPostService(postRepo, userRepo)

	user := seedUser(t, userRepo, "johndoe")
	for i := 0; i < 3; i++ {
		_, err := postSvc.CreatePost(user.ID, "Title", "Content")
		require.NoError(t, err)
	}

	t.Run("profile with stats", func(t *testing.T) {
		profile, err := userSvc.Profile(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "johndoe", profile.Username)
		assert.Equal(t, 3, profile.PostCount)
		assert.Equal(t, user.CreatedAt, profile.JoinedAt)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := userSvc.Profile(99999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
