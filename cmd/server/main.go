package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/api/routes"
	"github.com/naatiworlds/Recetagrm-api/internal/config"
	"github.com/naatiworlds/Recetagrm-api/internal/core/comments"
	"github.com/naatiworlds/Recetagrm-api/internal/core/follows"
	"github.com/naatiworlds/Recetagrm-api/internal/core/images"
	"github.com/naatiworlds/Recetagrm-api/internal/core/likes"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
	"github.com/naatiworlds/Recetagrm-api/internal/db/migrations"
	postgresRepo "github.com/naatiworlds/Recetagrm-api/internal/db/postgres"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
	"github.com/naatiworlds/Recetagrm-api/internal/storage/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level)

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		fatalf("Failed to ping database: %v", err)
	}
	cancelPing()

	logger.Log.Info("Connected to database")

	// Run migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, migrations.Dir); err != nil {
		fatalf("Failed to run migrations: %v", err)
	}

	logger.Log.Info("Migrations completed successfully")

	// Image store
	imageStore, err := cloudinary.NewStore(cfg.Images.CloudinaryURL)
	if err != nil {
		fatalf("Failed to configure image store: %v", err)
	}

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	followRepo := postgresRepo.NewFollowRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)

	userService := users.NewUserService(userRepo)
	followService := follows.NewFollowService(followRepo, userRepo)
	likeService := likes.NewLikeService(likeRepo, postRepo)
	commentService := comments.NewCommentService(commentRepo, postRepo)
	postService := posts.NewPostService(postRepo, followService, imageStore, images.UploadOptions{
		Folder:  cfg.Images.Folder,
		Quality: cfg.Images.Quality,
	})

	authMiddleware := middleware.NewJWTAuthMiddleware([]byte(cfg.Auth.JWTSecret))

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(routes.CORSMiddleware(cfg.CORS.AllowedOrigins))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer rateLimiter.Stop()
	r.Use(rateLimiter.Middleware)

	r.Route("/api/v1", func(r chi.Router) {
		routes.RegisterPostRoutes(r, postService, postRepo, authMiddleware, cfg.Images.MaxUploadBytes)
		routes.RegisterLikeRoutes(r, likeService, authMiddleware)
		routes.RegisterCommentRoutes(r, commentService, authMiddleware)
		routes.RegisterFollowRoutes(r, followService, authMiddleware)
		routes.RegisterUserRoutes(r, userService, postService, authMiddleware)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Warnf("Health check failed: %v", err)
			handlers.WriteError(w, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
		handlers.WriteSuccess(w, http.StatusOK, "ok", nil)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Infof("Recetagrm API starting on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Graceful shutdown failed: %v", err)
	}
}

func fatalf(format string, args ...any) {
	logger.Log.Errorf(format, args...)
	os.Exit(1)
}
