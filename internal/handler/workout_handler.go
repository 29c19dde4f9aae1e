package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "workhub/internal/errors"
	"workhub/internal/service"
)

// WorkoutHandler handles workout endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new workout handler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkoutRequest represents a workout creation request.
type CreateWorkoutRequest struct {
	Title string   `json:"title" validate:"required"`
	Load  *float64 `json:"load" validate:"required"`
	Reps  *int     `json:"reps" validate:"required"`
}

// UpdateWorkoutRequest represents a partial workout update.
type UpdateWorkoutRequest struct {
	Title *string  `json:"title,omitempty"`
	Load  *float64 `json:"load,omitempty"`
	Reps  *int     `json:"reps,omitempty"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	ID string `json:"id"`
}

// ListWorkouts godoc
// @Summary List all workouts
// @Tags workouts
// @Produce json
// @Success 200 {array} model.Workout
// @Failure 500 {object} errors.ErrorResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
	workouts, err := h.workoutService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// GetWorkout godoc
// @Summary Get a workout by id
// @Tags workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} model.Workout
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	workout, err := h.workoutService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// CreateWorkout godoc
// @Summary Create a new workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param request body CreateWorkoutRequest true "Workout payload"
// @Success 201 {object} model.Workout
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	var req CreateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validationf("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validationf("%s", err.Error())
	}

	workout, err := h.workoutService.Create(c.Request().Context(), service.CreateWorkoutInput{
		Title: req.Title,
		Load:  req.Load,
		Reps:  req.Reps,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout godoc
// @Summary Update a workout by id
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param request body UpdateWorkoutRequest true "Partial workout payload"
// @Success 200 {object} model.Workout
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [patch]
func (h *WorkoutHandler) UpdateWorkout(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validationf("invalid request body")
	}

	workout, err := h.workoutService.Update(c.Request().Context(), id, service.UpdateWorkoutInput{
		Title: req.Title,
		Load:  req.Load,
		Reps:  req.Reps,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout by id
// @Tags workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.workoutService.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, DeleteResponse{ID: id.String()})
}

// parseID reads the :id path param as a UUID.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidID
	}
	return id, nil
}
