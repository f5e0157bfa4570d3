package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/pagination"
)

// JobService is what JobHandler needs from the service layer.
type JobService interface {
	List(ctx context.Context, q pagination.Query) (pagination.Page[dtos.JobResponse], error)
	ListActive(ctx context.Context, q pagination.Query) (pagination.Page[dtos.JobResponse], error)
	Get(ctx context.Context, id uint) (*dtos.JobDetailResponse, error)
	Create(ctx context.Context, req dtos.JobCreateRequest) (*dtos.JobResponse, error)
	Update(ctx context.Context, id uint, req dtos.JobUpdateRequest) (*dtos.JobResponse, error)
	Delete(ctx context.Context, id uint) error
}

type JobHandler struct {
	JobService JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// ListJobs is GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	q, ok := bindPageQuery(c)
	if !ok {
		return
	}
	page, err := h.JobService.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListActiveJobs is GET /api/jobs/active
func (h *JobHandler) ListActiveJobs(c *gin.Context) {
	q, ok := bindPageQuery(c)
	if !ok {
		return
	}
	page, err := h.JobService.ListActive(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetJob is GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.JobService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.JobService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is PATCH /api/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.JobUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.JobService.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is DELETE /api/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.JobService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
