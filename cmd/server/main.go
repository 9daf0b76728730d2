package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VoloBuilds/super-coach-pro/internal/api"
	"github.com/VoloBuilds/super-coach-pro/internal/auth"
	"github.com/VoloBuilds/super-coach-pro/internal/config"
	"github.com/VoloBuilds/super-coach-pro/internal/repository/mongo"
	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting SuperCoachPro server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureMealPlanIndexes(ctx, appDB.Collection("meal_plans"))
		mongo.EnsureScheduleIndexes(ctx, appDB.Collection("workout_schedules"))
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	mealPlanRepo := mongo.NewMongoMealPlanRepository(appDB)
	scheduleRepo := mongo.NewMongoScheduleRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	workoutService := service.NewWorkoutService(workoutRepo)
	mealPlanService := service.NewMealPlanService(mealPlanRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	coachService := service.NewCoachService(cfg.Coach.APIKey, cfg.Coach.Model, cfg.Coach.Temperature, cfg.Coach.MaxTokens)

	// --- Token Verification ---
	// Local mode issues its own tokens and mounts register/login; remote mode
	// trusts an external identity service and mounts neither.
	var verifier auth.TokenVerifier
	var authService service.AuthService
	switch cfg.Auth.Mode {
	case "local":
		userRepo := mongo.NewMongoUserRepository(appDB)
		authService = service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
		verifier = auth.NewLocalVerifier(cfg.Auth.JWTSecret)
	case "remote":
		if cfg.Identity.URL == "" {
			log.Fatal("FATAL: identity.url is required in remote auth mode")
		}
		verifier = auth.NewRemoteVerifier(cfg.Identity.URL, cfg.Identity.APIKey, cfg.Identity.CacheTTL)
	default:
		log.Fatalf("FATAL: Unknown auth mode %q (want 'local' or 'remote')", cfg.Auth.Mode)
	}

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, verifier, workoutService, mealPlanService, scheduleService, coachService, authService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
