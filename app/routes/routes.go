package routes

import (
	"encoding/json"
	"net/http"

	"smriti/app/controllers"
	"smriti/app/middleware"
	"smriti/app/repositories"
	"smriti/app/security"
	"smriti/app/services"
	"smriti/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes defines the application's routes and returns a router, using
// the provided Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	tokens := security.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens)
	postService := services.NewPostService(postRepo, userRepo)
	userService := services.NewUserService(userRepo, postRepo)

	authController := controllers.NewAuthController(authService)
	postController := controllers.NewPostController(postService)
	userController := controllers.NewUserController(userService, postService)

	requireAuth := middleware.RequireAuth(tokens)

	// API routes
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", healthCheck).Methods("GET", "HEAD")

	// Auth API endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", authController.Signup).Methods("POST")
	auth.HandleFunc("/login", authController.Login).Methods("POST")
	auth.HandleFunc("/check-username/{username}", authController.CheckUsername).Methods("GET")

	authMe := auth.NewRoute().Subrouter()
	authMe.Use(requireAuth)
	authMe.HandleFunc("/me", authController.Me).Methods("GET")
	authMe.HandleFunc("/change-password", authController.ChangePassword).Methods("POST")

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")

	postsAuth := posts.NewRoute().Subrouter()
	postsAuth.Use(requireAuth)
	postsAuth.HandleFunc("", postController.Create).Methods("POST")
	postsAuth.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	postsAuth.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Users API endpoints
	users := api.PathPrefix("/users").Subrouter()
	users.Use(requireAuth)
	users.HandleFunc("/me/profile", userController.Profile).Methods("GET")
	users.HandleFunc("/me/posts", userController.Posts).Methods("GET")

	return router
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
