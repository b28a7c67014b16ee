package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/auth"
	"hrsystem/internal/domain/evaluation"
	"hrsystem/internal/domain/feedback"
	"hrsystem/internal/domain/reports"
	"hrsystem/internal/domain/selfassessment"
	"hrsystem/internal/domain/training"
	"hrsystem/internal/domain/user"
	"hrsystem/internal/platform/config"
	cryptoutil "hrsystem/internal/platform/crypto"
	"hrsystem/internal/platform/db"
	authhandler "hrsystem/internal/transport/http/handlers/auth"
	evaluationshandler "hrsystem/internal/transport/http/handlers/evaluations"
	feedbackhandler "hrsystem/internal/transport/http/handlers/feedback"
	idphandler "hrsystem/internal/transport/http/handlers/idp"
	reportshandler "hrsystem/internal/transport/http/handlers/reports"
	selfassessmentshandler "hrsystem/internal/transport/http/handlers/selfassessments"
	traininghandler "hrsystem/internal/transport/http/handlers/training"
	usershandler "hrsystem/internal/transport/http/handlers/users"
	"hrsystem/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	cryptoSvc, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		log.Fatalf("encryption key invalid: %v", err)
	}

	authStore := auth.NewStore(pool)
	userService := user.NewService(user.NewStore(pool))
	evaluationService := evaluation.NewService(evaluation.NewStore(pool))
	feedbackService := feedback.NewService(feedback.NewStore(pool))
	selfAssessmentService := selfassessment.NewService(selfassessment.NewStore(pool))
	trainingService := training.NewService(training.NewStore(pool))
	reportsService := reports.NewService(evaluation.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret, authStore))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, userService, cfg.JWTSecret, cryptoSvc, cfg.AllowSelfSignup)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/mfa/setup", authHandler.HandleMFASetup)
		r.Post("/auth/mfa/verify", authHandler.HandleMFAVerify)

		usershandler.NewHandler(userService).RegisterRoutes(r)
		evaluationshandler.NewHandler(evaluationService).RegisterRoutes(r)
		feedbackhandler.NewHandler(feedbackService).RegisterRoutes(r)
		selfassessmentshandler.NewHandler(selfAssessmentService).RegisterRoutes(r)
		traininghandler.NewHandler(trainingService).RegisterRoutes(r)
		idphandler.NewHandler(evaluationService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	log.Printf("HR server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// spaHandler serves the built frontend, falling back to index.html so
// client-side routes deep-link correctly.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticPath, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.IsDir() && r.URL.Path != "/") {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}
	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}
