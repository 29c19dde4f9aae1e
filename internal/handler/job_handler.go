package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workhub/internal/auth"
	apperrors "workhub/internal/errors"
	"workhub/internal/service"
)

// JobHandler handles job endpoints. All routes sit behind the auth gate; the
// caller's identity comes from the request context.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a job creation request.
type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// UpdateJobRequest represents a partial job update.
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Company     *string `json:"company,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// ListJobs godoc
// @Summary List the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	caller, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobService.List(c.Request().Context(), caller.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job by id
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	caller, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	job, err := h.jobService.Get(c.Request().Context(), caller.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Create a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job payload"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	caller, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validationf("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validationf("%s", err.Error())
	}

	job, err := h.jobService.Create(c.Request().Context(), caller.UserID, service.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Update a job by id
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body UpdateJobRequest true "Partial job payload"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	caller, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validationf("invalid request body")
	}

	job, err := h.jobService.Update(c.Request().Context(), caller.UserID, id, service.UpdateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job by id
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	caller, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.jobService.Remove(c.Request().Context(), caller.UserID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, DeleteResponse{ID: id.String()})
}
