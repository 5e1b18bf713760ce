package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/db"
	"jobboard/internal/domain/announcements"
	"jobboard/internal/domain/applications"
	"jobboard/internal/domain/auth"
	"jobboard/internal/domain/employers"
	"jobboard/internal/domain/jobs"
	"jobboard/internal/platform/config"
	"jobboard/internal/platform/filestore"
	announcementshandler "jobboard/internal/transport/http/handlers/announcements"
	authhandler "jobboard/internal/transport/http/handlers/auth"
	employershandler "jobboard/internal/transport/http/handlers/employers"
	jobshandler "jobboard/internal/transport/http/handlers/jobs"
	uploadshandler "jobboard/internal/transport/http/handlers/uploads"
	"jobboard/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	jobStore := jobs.NewStore(pool)
	jobsSvc := jobs.NewService(jobStore)
	announcementsSvc := announcements.NewService(announcements.NewStore(pool))
	employerStore := employers.NewStore(pool)
	applicationStore := applications.NewStore(pool)
	authSvc := auth.NewService(auth.NewStore(pool), employerStore, cfg.JWTSecret,
		time.Duration(cfg.ResetTokenTTLHours)*time.Hour)
	files := filestore.New(cfg.UploadDir, cfg.UploadBaseURL)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.Auth(cfg.JWTSecret))

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

	jobsHandler := jobshandler.NewHandler(jobsSvc, applicationStore, employerStore)
	employersHandler := employershandler.NewHandler(employerStore)
	uploadsHandler := uploadshandler.NewHandler(files, cfg.MaxUploadBytes)

	// Uploads carry their own size cap, so only the JSON routes go
	// through the small body limit.
	jsonLimit := middleware.BodyLimit(cfg.MaxBodyBytes)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RoleGate)

		r.Group(func(r chi.Router) {
			r.Use(jsonLimit)
			authhandler.NewHandler(authSvc).RegisterRoutes(r)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(jsonLimit)
				jobsHandler.RegisterAdminRoutes(r)
				announcementshandler.NewHandler(announcementsSvc).RegisterRoutes(r)
				employersHandler.RegisterAdminRoutes(r)
			})
			uploadsHandler.RegisterRoutes(r)
		})

		r.Route("/employer", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(jsonLimit)
				jobsHandler.RegisterEmployerRoutes(r)
				employersHandler.RegisterEmployerRoutes(r)
			})
			uploadsHandler.RegisterRoutes(r)
		})
	})

	// Uploaded assets (logos, permits) are served straight off disk.
	router.Mount(cfg.UploadBaseURL+"/", http.StripPrefix(cfg.UploadBaseURL+"/",
		http.FileServer(http.Dir(files.Root()))))

	log.Printf("job board server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
