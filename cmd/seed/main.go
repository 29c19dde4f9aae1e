package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workhub/internal/config"
	"workhub/internal/db"
	"workhub/internal/model"
	"workhub/internal/repository"
)

var demoWorkouts = []model.Workout{
	{Title: "Bench Press", Load: 100, Reps: 10},
	{Title: "Squat", Load: 140, Reps: 8},
	{Title: "Deadlift", Load: 180, Reps: 5},
	{Title: "Pull Up", Load: 0, Reps: 12},
	{Title: "Overhead Press", Load: 60, Reps: 10},
	{Title: "Barbell Row", Load: 80, Reps: 10},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Ensure schema is up to date before inserting
	if err := gormDB.AutoMigrate(&model.User{}, &model.Workout{}, &model.Job{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	workoutRepo := repository.NewWorkoutRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	// Demo user owns the seeded jobs; skip if already present.
	demoUser, err := userRepo.FindByEmail(ctx, "demo@workhub.dev")
	if err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		demoUser = &model.User{
			ID:           uuid.New(),
			Name:         "Demo User",
			Email:        "demo@workhub.dev",
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, demoUser); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoUser.Email)
	}

	seeded := 0
	for _, w := range demoWorkouts {
		workout := w
		workout.ID = uuid.New()
		if err := workoutRepo.Create(ctx, &workout); err != nil {
			log.Printf("Warning: failed to seed workout %q: %v", w.Title, err)
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d workouts", seeded)

	demoJob := &model.Job{
		ID:          uuid.New(),
		OwnerID:     demoUser.ID,
		Title:       "Personal Trainer",
		Company:     "Workhub Gym",
		Description: "Coach members through strength programs.",
		Location:    "Remote",
	}
	if err := jobRepo.Create(ctx, demoJob); err != nil {
		log.Printf("Warning: failed to seed demo job: %v", err)
	} else {
		log.Printf("Seeded demo job %q", demoJob.Title)
	}

	log.Println("Seed script completed")
}
