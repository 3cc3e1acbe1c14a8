package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smriti/app/middleware"
	"smriti/app/services"
)

// UserController handles HTTP requests for user profiles
type UserController struct {
	userService *services.UserService
	postService *services.PostService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, postService *services.PostService) *UserController {
	return &UserController{
		userService: userService,
		postService: postService,
	}
}

// Profile returns the authenticated user's profile with statistics
func (uc *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}

	profile, err := uc.userService.Profile(userID)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"profile": profile,
	})
}

// Posts returns the authenticated user's posts with pagination
func (uc *UserController) Posts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage := services.DefaultPageSize
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts, err := uc.postService.ListPostsByUser(userID, page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"posts":   posts,
		"page":    page,
	})
}
