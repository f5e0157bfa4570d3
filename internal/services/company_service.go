package services

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/mapper"
	"github.com/justsurfingit/job-board-api/internal/pagination"
	"github.com/justsurfingit/job-board-api/internal/repository"
	"github.com/justsurfingit/job-board-api/internal/telemetry"
	"github.com/justsurfingit/job-board-api/internal/validation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type CompanyService struct {
	store     *database.Store
	validator *validation.Validator
	log       *zap.Logger
	tracer    trace.Tracer
}

func NewCompanyService(store *database.Store, v *validation.Validator, log *zap.Logger) *CompanyService {
	return &CompanyService{
		store:     store,
		validator: v,
		log:       log.Named("company_service"),
		tracer:    telemetry.GetTracer(tracerName),
	}
}

func (s *CompanyService) List(ctx context.Context, q pagination.Query) (_ pagination.Page[dtos.CompanyResponse], err error) {
	ctx, end := startSpan(ctx, s.tracer, "CompanyService.List")
	defer end(&err)

	req, err := pageRequest(s.validator, q, repository.CompanySort)
	if err != nil {
		return pagination.Page[dtos.CompanyResponse]{}, err
	}

	return database.Transact(ctx, s.store, func(r *database.Repositories) (pagination.Page[dtos.CompanyResponse], error) {
		companies, total, err := r.Companies.FindAll(ctx, req)
		if err != nil {
			return pagination.Page[dtos.CompanyResponse]{}, err
		}
		return pagination.NewPage(mapper.CompaniesToResponses(companies), req, total), nil
	})
}

func (s *CompanyService) Get(ctx context.Context, id uint) (_ *dtos.CompanyResponse, err error) {
	ctx, end := startSpan(ctx, s.tracer, "CompanyService.Get", telemetry.ID("company.id", id))
	defer end(&err)

	return database.Transact(ctx, s.store, func(r *database.Repositories) (*dtos.CompanyResponse, error) {
		company, err := r.Companies.FindByID(ctx, id)
		if err != nil {
			return nil, notFound(err, "Company", id)
		}
		resp := mapper.CompanyToResponse(company)
		return &resp, nil
	})
}

func (s *CompanyService) Create(ctx context.Context, req dtos.CompanyCreateRequest) (_ *dtos.CompanyResponse, err error) {
	ctx, end := startSpan(ctx, s.tracer, "CompanyService.Create")
	defer end(&err)

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	resp, err := database.Transact(ctx, s.store, func(r *database.Repositories) (*dtos.CompanyResponse, error) {
		company := mapper.CompanyFromCreate(req)
		if err := r.Companies.Create(ctx, company); err != nil {
			return nil, err
		}
		resp := mapper.CompanyToResponse(company)
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("company created", zap.Uint("company_id", resp.ID))
	return resp, nil
}

// Update applies a partial update. A version in req must match the stored
// one; a concurrent writer that got there first also yields a conflict.
func (s *CompanyService) Update(ctx context.Context, id uint, req dtos.CompanyUpdateRequest) (_ *dtos.CompanyResponse, err error) {
	ctx, end := startSpan(ctx, s.tracer, "CompanyService.Update", telemetry.ID("company.id", id))
	defer end(&err)

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	resp, err := database.Transact(ctx, s.store, func(r *database.Repositories) (*dtos.CompanyResponse, error) {
		company, err := r.Companies.FindByID(ctx, id)
		if err != nil {
			return nil, notFound(err, "Company", id)
		}
		if err := checkVersion(req.Version.Ptr(), company.Version); err != nil {
			return nil, err
		}

		mapper.ApplyCompanyUpdate(company, req)
		if err := r.Companies.Update(ctx, company); err != nil {
			return nil, conflict(err)
		}
		resp := mapper.CompanyToResponse(company)
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("company updated", zap.Uint("company_id", id), zap.Int("version", resp.Version))
	return resp, nil
}

// Delete removes the company and its jobs. Unknown ids are not an error.
func (s *CompanyService) Delete(ctx context.Context, id uint) (err error) {
	ctx, end := startSpan(ctx, s.tracer, "CompanyService.Delete", telemetry.ID("company.id", id))
	defer end(&err)

	deleted := false
	err = database.Exec(ctx, s.store, func(r *database.Repositories) error {
		company, err := r.Companies.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		deleted = true
		return r.Companies.Delete(ctx, company)
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.Info("company deleted", zap.Uint("company_id", id))
	}
	return nil
}
