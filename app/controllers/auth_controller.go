package controllers

import (
	"encoding/json"
	"net/http"

	"smriti/app/middleware"
	"smriti/app/models"
	"smriti/app/services"

	"github.com/gorilla/mux"
)

// AuthController handles HTTP requests for signup, login and account access
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// authPayload is the user-plus-token body returned by signup and login
func authPayload(user *models.User, token string) map[string]interface{} {
	return map[string]interface{}{
		"userId":      user.ID,
		"username":    user.Username,
		"displayName": user.DisplayName,
		"email":       user.Email,
		"phone":       user.Phone,
		"token":       token,
	}
}

// Signup handles new user registration
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	user, token, err := ac.authService.Signup(req)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendSuccess(w, http.StatusCreated, "User registered successfully", authPayload(user, token))
}

// Login handles authentication by username, email or phone
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	user, token, err := ac.authService.Login(req)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, "Login successful", authPayload(user, token))
}

// CheckUsername reports whether a username is still available
func (ac *AuthController) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	available, err := ac.authService.CheckUsername(username)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	message := "Username is already taken"
	if available {
		message = "Username is available"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"available": available,
		"message":   message,
	})
}

// Me returns the authenticated user
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}

	user, err := ac.authService.GetUser(userID)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// ChangePassword replaces the authenticated user's password
func (ac *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	err := ac.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, "Password updated successfully", nil)
}
