package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workhub/internal/service"
)

// SeedHandler loads demo workout data, mirroring the starter dataset used in
// development environments.
type SeedHandler struct {
	workoutService service.WorkoutService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(workoutService service.WorkoutService) *SeedHandler {
	return &SeedHandler{workoutService: workoutService}
}

// SeedWorkoutsResponse represents the seed response.
type SeedWorkoutsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type seedWorkout struct {
	Title string
	Load  float64
	Reps  int
}

var seedWorkouts = []seedWorkout{
	{Title: "Bench Press", Load: 100, Reps: 10},
	{Title: "Squat", Load: 140, Reps: 8},
	{Title: "Deadlift", Load: 180, Reps: 5},
	{Title: "Pull Up", Load: 0, Reps: 12},
	{Title: "Overhead Press", Load: 60, Reps: 10},
}

// SeedWorkouts godoc
// @Summary Seed demo workouts
// @Tags seed
// @Produce json
// @Success 200 {object} SeedWorkoutsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/workouts [get]
func (h *SeedHandler) SeedWorkouts(c echo.Context) error {
	count := 0
	for _, w := range seedWorkouts {
		load, reps := w.Load, w.Reps
		if _, err := h.workoutService.Create(c.Request().Context(), service.CreateWorkoutInput{
			Title: w.Title,
			Load:  &load,
			Reps:  &reps,
		}); err != nil {
			return err
		}
		count++
	}
	return c.JSON(http.StatusOK, SeedWorkoutsResponse{
		Message: "workouts seeded successfully",
		Count:   count,
	})
}
