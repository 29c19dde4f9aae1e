package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"workhub/internal/auth"
	"workhub/internal/cache"
	"workhub/internal/config"
	"workhub/internal/db"
	"workhub/internal/handler"
	"workhub/internal/model"
	"workhub/internal/repository"
	"workhub/internal/router"
	"workhub/internal/service"
)

// @title Workhub API
// @version 1.0
// @description Workout tracking and job board API with JWT authentication.
// @host localhost:4000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Job{},
			&model.Workout{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Workout{},
		&model.Job{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	workoutRepo := repository.NewWorkoutRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	workoutService := service.NewWorkoutService(workoutRepo, cacheClient)
	jobService := service.NewJobService(jobRepo, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	jobHandler := handler.NewJobHandler(jobService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	seedHandler := handler.NewSeedHandler(workoutService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		cacheClient,
		workoutHandler,
		jobHandler,
		authHandler,
		userHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
