package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/pagination"
)

type CompanyService interface {
	List(ctx context.Context, q pagination.Query) (pagination.Page[dtos.CompanyResponse], error)
	Get(ctx context.Context, id uint) (*dtos.CompanyResponse, error)
	Create(ctx context.Context, req dtos.CompanyCreateRequest) (*dtos.CompanyResponse, error)
	Update(ctx context.Context, id uint, req dtos.CompanyUpdateRequest) (*dtos.CompanyResponse, error)
	Delete(ctx context.Context, id uint) error
}

type CompanyHandler struct {
	CompanyService CompanyService
}

func NewCompanyHandler(s CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: s}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	q, ok := bindPageQuery(c)
	if !ok {
		return
	}
	page, err := h.CompanyService.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.CompanyService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.CompanyService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.CompanyUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.CompanyService.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany also removes the company's jobs.
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CompanyService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
