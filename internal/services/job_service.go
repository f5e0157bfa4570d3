package services

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-board-api/internal/apperr"
	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/mapper"
	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/justsurfingit/job-board-api/internal/pagination"
	"github.com/justsurfingit/job-board-api/internal/repository"
	"github.com/justsurfingit/job-board-api/internal/telemetry"
	"github.com/justsurfingit/job-board-api/internal/validation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type JobService struct {
	store     *database.Store
	validator *validation.Validator
	log       *zap.Logger
	tracer    trace.Tracer
}

func NewJobService(store *database.Store, v *validation.Validator, log *zap.Logger) *JobService {
	return &JobService{
		store:     store,
		validator: v,
		log:       log.Named("job_service"),
		tracer:    telemetry.GetTracer(tracerName),
	}
}

type jobLister func(ctx context.Context, req pagination.Request) ([]models.Job, int64, error)

// List pages over all jobs, each with its company summary.
func (s *JobService) List(ctx context.Context, q pagination.Query) (_ pagination.Page[dtos.JobResponse], err error) {
	ctx, end := startSpan(ctx, s.tracer, "JobService.List")
	defer end(&err)

	return s.list(ctx, q, func(r *database.Repositories) jobLister { return r.Jobs.FindAllWithCompany })
}

// ListActive is List restricted to active jobs.
func (s *JobService) ListActive(ctx context.Context, q pagination.Query) (_ pagination.Page[dtos.JobResponse], err error) {
	ctx, end := startSpan(ctx, s.tracer, "JobService.ListActive")
	defer end(&err)

	return s.list(ctx, q, func(r *database.Repositories) jobLister { return r.Jobs.FindActiveWithCompany })
}

func (s *JobService) list(ctx context.Context, q pagination.Query, pick func(*database.Repositories) jobLister) (pagination.Page[dtos.JobResponse], error) {
	req, err := pageRequest(s.validator, q, repository.JobSort)
	if err != nil {
		return pagination.Page[dtos.JobResponse]{}, err
	}

	return database.Transact(ctx, s.store, func(r *database.Repositories) (pagination.Page[dtos.JobResponse], error) {
		jobs, total, err := pick(r)(ctx, req)
		if err != nil {
			return pagination.Page[dtos.JobResponse]{}, err
		}
		return pagination.NewPage(mapper.JobsToResponses(jobs), req, total), nil
	})
}

func (s *JobService) Get(ctx context.Context, id uint) (_ *dtos.JobDetailResponse, err error) {
	ctx, end := startSpan(ctx, s.tracer, "JobService.Get", telemetry.ID("job.id", id))
	defer end(&err)

	return database.Transact(ctx, s.store, func(r *database.Repositories) (*dtos.JobDetailResponse, error) {
		job, err := r.Jobs.FindByID(ctx, id)
		if err != nil {
			return nil, notFound(err, "Job", id)
		}
		resp := mapper.JobToDetail(job)
		return &resp, nil
	})
}

// Create posts a job for an existing company. An unknown companyId fails
// before anything is written.
func (s *JobService) Create(ctx context.Context, req dtos.JobCreateRequest) (_ *dtos.JobResponse, err error) {
	ctx, end := startSpan(ctx, s.tracer, "JobService.Create", telemetry.ID("company.id", req.CompanyID))
	defer end(&err)

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	resp, err := database.Transact(ctx, s.store, func(r *database.Repositories) (*dtos.JobResponse, error) {
		company, err := r.Companies.FindByID(ctx, req.CompanyID)
		if err != nil {
			return nil, notFound(err, "Company", req.CompanyID)
		}

		job := mapper.JobFromCreate(req)
		job.Company = *company
		if err := r.Jobs.Create(ctx, job); err != nil {
			return nil, err
		}
		resp := mapper.JobToResponse(job)
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("job created", zap.Uint("job_id", resp.ID), zap.Uint("company_id", req.CompanyID))
	return resp, nil
}

// Update applies a partial update, moving the job to another company when
// companyId is sent. The merged salary range must still hold.
func (s *JobService) Update(ctx context.Context, id uint, req dtos.JobUpdateRequest) (_ *dtos.JobResponse, err error) {
	ctx, end := startSpan(ctx, s.tracer, "JobService.Update", telemetry.ID("job.id", id))
	defer end(&err)

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	resp, err := database.Transact(ctx, s.store, func(r *database.Repositories) (*dtos.JobResponse, error) {
		job, err := r.Jobs.FindByID(ctx, id)
		if err != nil {
			return nil, notFound(err, "Job", id)
		}
		if err := checkVersion(req.Version.Ptr(), job.Version); err != nil {
			return nil, err
		}

		if req.CompanyID.Present() && req.CompanyID.Value != job.CompanyID {
			company, err := r.Companies.FindByID(ctx, req.CompanyID.Value)
			if err != nil {
				return nil, notFound(err, "Company", req.CompanyID.Value)
			}
			job.Company = *company
		}

		mapper.ApplyJobUpdate(job, req)
		if !validation.ValidSalaryRange(validation.Bounds{Min: job.SalaryMin, Max: job.SalaryMax}) {
			return nil, apperr.Validation(map[string]string{"salaryMax": validation.SalaryRangeMessage})
		}

		if err := r.Jobs.Update(ctx, job); err != nil {
			return nil, conflict(err)
		}
		resp := mapper.JobToResponse(job)
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("job updated", zap.Uint("job_id", id), zap.Int("version", resp.Version))
	return resp, nil
}

// Delete removes the job. Unknown ids are not an error.
func (s *JobService) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := startSpan(ctx, s.tracer, "JobService.Delete", telemetry.ID("job.id", id))
	defer end(&err)

	deleted := false
	err = database.Exec(ctx, s.store, func(r *database.Repositories) error {
		job, err := r.Jobs.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		deleted = true
		return r.Jobs.Delete(ctx, job)
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.Info("job deleted", zap.Uint("job_id", id))
	}
	return nil
}
