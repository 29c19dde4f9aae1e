package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workhub/internal/cache"
	apperrors "workhub/internal/errors"
	"workhub/internal/model"
	"workhub/internal/repository"
)

const workoutCacheTTL = 5 * time.Minute

// CreateWorkoutInput carries the fields required to create a workout.
// Load and Reps are pointers so a missing field is distinguishable from zero.
type CreateWorkoutInput struct {
	Title string
	Load  *float64
	Reps  *int
}

// UpdateWorkoutInput carries a partial workout update. Nil fields are left
// untouched.
type UpdateWorkoutInput struct {
	Title *string
	Load  *float64
	Reps  *int
}

// WorkoutService exposes workout CRUD operations.
type WorkoutService interface {
	List(ctx context.Context) ([]model.Workout, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Workout, error)
	Create(ctx context.Context, in CreateWorkoutInput) (*model.Workout, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateWorkoutInput) (*model.Workout, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type workoutService struct {
	repo  repository.WorkoutRepository
	cache *cache.Client
}

// NewWorkoutService builds a WorkoutService with repository and cache.
func NewWorkoutService(repo repository.WorkoutRepository, cache *cache.Client) WorkoutService {
	return &workoutService{repo: repo, cache: cache}
}

func (s *workoutService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("workout:%s", id)
}

func (s *workoutService) List(ctx context.Context) ([]model.Workout, error) {
	workouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if workouts == nil {
		workouts = []model.Workout{}
	}
	return workouts, nil
}

func (s *workoutService) Get(ctx context.Context, id uuid.UUID) (*model.Workout, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Workout
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	workout, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}

	if payload, err := json.Marshal(workout); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, workoutCacheTTL)
	}
	return workout, nil
}

func (s *workoutService) Create(ctx context.Context, in CreateWorkoutInput) (*model.Workout, error) {
	if err := validateWorkoutFields(in.Title, in.Load, in.Reps); err != nil {
		return nil, err
	}

	workout := &model.Workout{
		ID:    uuid.New(),
		Title: in.Title,
		Load:  *in.Load,
		Reps:  *in.Reps,
	}
	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(workout.ID))
	return workout, nil
}

// Update applies a partial update all-or-nothing: fields are merged onto a
// copy of the stored document and validated before anything is persisted.
func (s *workoutService) Update(ctx context.Context, id uuid.UUID, in UpdateWorkoutInput) (*model.Workout, error) {
	workout, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}

	updated := *workout
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Load != nil {
		updated.Load = *in.Load
	}
	if in.Reps != nil {
		updated.Reps = *in.Reps
	}
	if err := validateWorkoutFields(updated.Title, &updated.Load, &updated.Reps); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return &updated, nil
}

func (s *workoutService) Remove(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWorkoutNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func validateWorkoutFields(title string, load *float64, reps *int) error {
	if title == "" {
		return apperrors.Validationf("title is required")
	}
	if load == nil {
		return apperrors.Validationf("load is required")
	}
	if reps == nil {
		return apperrors.Validationf("reps is required")
	}
	if *load < 0 {
		return apperrors.Validationf("load must not be negative")
	}
	if *reps < 0 {
		return apperrors.Validationf("reps must not be negative")
	}
	return nil
}
