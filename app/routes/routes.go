package routes

import (
	"net/http"

	"pressroom/app/audit"
	"pressroom/app/auth"
	"pressroom/app/config"
	"pressroom/app/controllers"
	"pressroom/app/middleware"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Setup defines the application's routes and returns a router. All
// dependencies are injected; nothing here opens files or databases.
func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	postRepo repositories.PostRepository,
	jobRepo repositories.JobRepository,
	gateway *auth.Gateway,
	auditLog *audit.Log,
) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(services.NewPostService(postRepo), auditLog, logger)
	jobController := controllers.NewJobController(services.NewJobService(jobRepo), auditLog, logger)
	authController := controllers.NewAuthController(gateway, cfg, logger)
	auditController := controllers.NewAuditController(auditLog, logger)

	requireAuth := middleware.RequireAuth(gateway)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Login is rate-limited per IP.
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	api.Handle("/auth/login", loginLimiter.Limit(http.HandlerFunc(authController.Login))).Methods("POST")

	// Posts API endpoints: reads are public, mutations require auth.
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.List).Methods("GET")
	posts.HandleFunc("/{slug:[a-z0-9-]+}", postController.Show).Methods("GET")
	posts.Handle("", requireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/{slug:[a-z0-9-]+}", requireAuth(http.HandlerFunc(postController.Update))).Methods("PUT")
	posts.Handle("/{slug:[a-z0-9-]+}", requireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	// Jobs API endpoints: the public listing shows active postings only.
	jobs := api.PathPrefix("/jobs").Subrouter()
	jobs.HandleFunc("", jobController.List).Methods("GET")
	jobs.HandleFunc("/{id:[0-9]+}", jobController.Show).Methods("GET")
	jobs.Handle("", requireAuth(http.HandlerFunc(jobController.Create))).Methods("POST")
	jobs.Handle("/{id:[0-9]+}", requireAuth(http.HandlerFunc(jobController.Update))).Methods("PUT")
	jobs.Handle("/{id:[0-9]+}", requireAuth(http.HandlerFunc(jobController.Delete))).Methods("DELETE")

	// Admin endpoints
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(requireAuth)
	admin.HandleFunc("/posts", postController.AdminList).Methods("GET")
	admin.HandleFunc("/jobs", jobController.AdminList).Methods("GET")
	admin.HandleFunc("/audit", auditController.List).Methods("GET")

	// Serve the marketing site's static assets.
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	return router
}
