package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workhub/internal/model"
)

// WorkoutRepository defines workout persistence operations.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *model.Workout) error
	Update(ctx context.Context, workout *model.Workout) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workout, error)
	List(ctx context.Context) ([]model.Workout, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository builds a GORM-backed repository.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *model.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) Update(ctx context.Context, workout *model.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Workout, error) {
	var workout model.Workout
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) List(ctx context.Context) ([]model.Workout, error) {
	var workouts []model.Workout
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

// Delete removes a workout and reports how many rows were affected, so the
// service can distinguish a missing id from a successful delete.
func (r *workoutRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Workout{})
	return res.RowsAffected, res.Error
}
