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

const jobCacheTTL = 5 * time.Minute

// CreateJobInput carries the fields required to create a job posting.
type CreateJobInput struct {
	Title       string
	Company     string
	Description string
	Location    string
}

// UpdateJobInput carries a partial job update. Nil fields are left untouched.
type UpdateJobInput struct {
	Title       *string
	Company     *string
	Description *string
	Location    *string
}

// JobService exposes job CRUD operations. Every operation takes the caller's
// id and enforces the ownership invariant before touching job data.
type JobService interface {
	List(ctx context.Context, callerID uuid.UUID) ([]model.Job, error)
	Get(ctx context.Context, callerID, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, callerID uuid.UUID, in CreateJobInput) (*model.Job, error)
	Update(ctx context.Context, callerID, id uuid.UUID, in UpdateJobInput) (*model.Job, error)
	Remove(ctx context.Context, callerID, id uuid.UUID) error
}

type jobService struct {
	repo  repository.JobRepository
	cache *cache.Client
}

// NewJobService builds a JobService with repository and cache.
func NewJobService(repo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{repo: repo, cache: cache}
}

func (s *jobService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id)
}

func (s *jobService) List(ctx context.Context, callerID uuid.UUID) ([]model.Job, error) {
	jobs, err := s.repo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, callerID, id uuid.UUID) (*model.Job, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			if cached.OwnerID != callerID {
				return nil, apperrors.ErrForbidden
			}
			return &cached, nil
		}
	}

	job, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, jobCacheTTL)
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, callerID uuid.UUID, in CreateJobInput) (*model.Job, error) {
	if err := validateJobFields(in.Title, in.Company); err != nil {
		return nil, err
	}

	job := &model.Job{
		ID:          uuid.New(),
		OwnerID:     callerID,
		Title:       in.Title,
		Company:     in.Company,
		Description: in.Description,
		Location:    in.Location,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(job.ID))
	return job, nil
}

// Update merges non-nil fields onto a copy and validates before persisting.
// OwnerID is never touched.
func (s *jobService) Update(ctx context.Context, callerID, id uuid.UUID, in UpdateJobInput) (*model.Job, error) {
	job, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	updated := *job
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Company != nil {
		updated.Company = *in.Company
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.Location != nil {
		updated.Location = *in.Location
	}
	if err := validateJobFields(updated.Title, updated.Company); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return &updated, nil
}

func (s *jobService) Remove(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, callerID, id); err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrJobNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// findOwned loads a job and enforces the ownership invariant.
func (s *jobService) findOwned(ctx context.Context, callerID, id uuid.UUID) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}

func validateJobFields(title, company string) error {
	if title == "" {
		return apperrors.Validationf("title is required")
	}
	if company == "" {
		return apperrors.Validationf("company is required")
	}
	return nil
}
