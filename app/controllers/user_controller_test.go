package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserControllerProfile(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.signupUser(t, "alice")

	createPost(t, env, token, "One", "content")
	createPost(t, env, token, "Two", "content")

	t.Run("returns profile with post count", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/users/me/profile", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		profile := body["profile"].(map[string]interface{})
		assert.Equal(t, "alice", profile["username"])
		assert.Equal(t, float64(2), profile["postCount"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/users/me/profile", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserControllerPosts(t *testing.T) {
	env := setupTestEnv(t)
	_, aliceToken := env.signupUser(t, "alice")
	_, bobToken := env.signupUser(t, "bob")

	for i := 1; i <= 3; i++ {
		createPost(t, env, aliceToken, fmt.Sprintf("Alice %d", i), "content")
	}
	createPost(t, env, bobToken, "Bob 1", "content")

	t.Run("lists only own posts", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/users/me/posts", aliceToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		posts := body["posts"].([]interface{})
		assert.Len(t, posts, 3)
		for _, p := range posts {
			assert.Equal(t, "alice", p.(map[string]interface{})["authorUsername"])
		}
	})

	t.Run("pagination", func(t *testing.T) {
		rec := env.do(t, "GET", "/api/users/me/posts?page=2&per_page=2", aliceToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Len(t, body["posts"], 1)
	})
}
