// Package mapper converts between request/response DTOs and models.
package mapper

import (
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/models"
)

func CompanyFromCreate(req dtos.CompanyCreateRequest) *models.Company {
	return &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}
}

// ApplyCompanyUpdate copies the fields present in req onto c. Nullable
// fields sent as null are cleared; absent fields are left alone.
func ApplyCompanyUpdate(c *models.Company, req dtos.CompanyUpdateRequest) {
	setValue(&c.Name, req.Name)
	setNullable(&c.Description, req.Description)
	setNullable(&c.Website, req.Website)
	setValue(&c.Location, req.Location)
}

func CompanyToResponse(c *models.Company) dtos.CompanyResponse {
	return dtos.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

func CompanyToSummary(c *models.Company) *dtos.CompanySummary {
	if c == nil || c.ID == 0 {
		return nil
	}
	return &dtos.CompanySummary{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
	}
}

func setValue[T any](dst *T, o dtos.Optional[T]) {
	if o.Present() {
		*dst = o.Value
	}
}

func setNullable[T any](dst **T, o dtos.Optional[T]) {
	if o.Set {
		*dst = o.Ptr()
	}
}
