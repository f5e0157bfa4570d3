package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/justsurfingit/job-board-api/internal/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var jobColumns = map[string]string{
	"id":              "id",
	"title":           "title",
	"location":        "location",
	"salaryMin":       "salary_min",
	"salaryMax":       "salary_max",
	"jobType":         "job_type",
	"experienceLevel": "experience_level",
	"remoteOption":    "remote_option",
	"postedDate":      "posted_date",
	"isActive":        "is_active",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}

// JobSort is the sort allow-list for jobs, newest postings first by default.
var JobSort = pagination.NewSortSpec(
	pagination.Order{Field: "postedDate", Direction: pagination.Desc},
	sortFields(jobColumns)...,
)

type JobRepository struct {
	db  *gorm.DB
	now Clock
}

func NewJobRepository(db *gorm.DB, now Clock) *JobRepository {
	return &JobRepository{db: db, now: now}
}

// FindByID retrieves a job by its ID with its company loaded.
func (r *JobRepository) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find job %d: %w", id, err)
	}
	return &job, nil
}

// FindAllWithCompany pages over all jobs, eager-loading each job's company.
func (r *JobRepository) FindAllWithCompany(ctx context.Context, req pagination.Request) ([]models.Job, int64, error) {
	return r.list(ctx, req)
}

// FindActiveWithCompany is FindAllWithCompany restricted to active jobs.
func (r *JobRepository) FindActiveWithCompany(ctx context.Context, req pagination.Request) ([]models.Job, int64, error) {
	return r.list(ctx, req, activeOnly)
}

func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func (r *JobRepository) list(ctx context.Context, req pagination.Request, filters ...func(*gorm.DB) *gorm.DB) ([]models.Job, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Job{}).Scopes(filters...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Scopes(filters...).
		Scopes(orderBy(req.Orders, jobColumns), paginate(req)).
		Preload("Company").
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, total, nil
}

// Create inserts job. PostedDate defaults to the insert time.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	now := r.now()
	job.CreatedAt, job.UpdatedAt, job.Version = now, now, 1
	if job.PostedDate.IsZero() {
		job.PostedDate = now
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error; err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// Update writes job only if the stored version still equals job.Version.
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	now := r.now()
	res := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND version = ?", job.ID, job.Version).
		Updates(map[string]interface{}{
			"title":            job.Title,
			"description":      job.Description,
			"company_id":       job.CompanyID,
			"location":         job.Location,
			"salary_min":       job.SalaryMin,
			"salary_max":       job.SalaryMax,
			"job_type":         job.JobType,
			"experience_level": job.ExperienceLevel,
			"remote_option":    job.RemoteOption,
			"posted_date":      job.PostedDate,
			"expiry_date":      job.ExpiryDate,
			"is_active":        job.IsActive,
			"application_url":  job.ApplicationURL,
			"updated_at":       now,
			"version":          gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("update job %d: %w", job.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}

	job.UpdatedAt = now
	job.Version++
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Delete(&models.Job{}, job.ID).Error; err != nil {
		return fmt.Errorf("delete job %d: %w", job.ID, err)
	}
	return nil
}
