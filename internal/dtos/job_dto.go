package dtos

import (
	"time"

	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/shopspring/decimal"
)

type JobCreateRequest struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	CompanyID   uint   `json:"companyId" validate:"required"`
	Location    string `json:"location" validate:"notblank"`

	SalaryMin *decimal.Decimal `json:"salaryMin" validate:"omitempty,gte=0,lte=99999999.99"`
	SalaryMax *decimal.Decimal `json:"salaryMax" validate:"omitempty,gte=0,lte=99999999.99"`

	JobType         models.JobType         `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP TEMPORARY"`
	ExperienceLevel models.ExperienceLevel `json:"experienceLevel" validate:"required,oneof=ENTRY JUNIOR MID SENIOR LEAD EXECUTIVE"`
	RemoteOption    models.RemoteOption    `json:"remoteOption" validate:"required,oneof=ONSITE REMOTE HYBRID"`

	// Optional Fields
	PostedDate     *time.Time `json:"postedDate"`
	ExpiryDate     *time.Time `json:"expiryDate" validate:"omitempty,gt"`
	IsActive       *bool      `json:"isActive"` // Defaults to true if omitted
	ApplicationURL *string    `json:"applicationUrl" validate:"omitempty,httpurl,max=500"`
}

func (r JobCreateRequest) SalaryBounds() (min, max *decimal.Decimal) {
	return r.SalaryMin, r.SalaryMax
}

// JobUpdateRequest is a partial update; see Optional.
type JobUpdateRequest struct {
	Title       Optional[string] `json:"title" validate:"omitempty,notblank"`
	Description Optional[string] `json:"description" validate:"omitempty,notblank"`
	CompanyID   Optional[uint]   `json:"companyId" validate:"omitempty,gt=0"`
	Location    Optional[string] `json:"location" validate:"omitempty,notblank"`

	SalaryMin Optional[decimal.Decimal] `json:"salaryMin" validate:"omitempty,gte=0,lte=99999999.99"`
	SalaryMax Optional[decimal.Decimal] `json:"salaryMax" validate:"omitempty,gte=0,lte=99999999.99"`

	JobType         Optional[models.JobType]         `json:"jobType" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP TEMPORARY"`
	ExperienceLevel Optional[models.ExperienceLevel] `json:"experienceLevel" validate:"omitempty,oneof=ENTRY JUNIOR MID SENIOR LEAD EXECUTIVE"`
	RemoteOption    Optional[models.RemoteOption]    `json:"remoteOption" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`

	PostedDate     Optional[time.Time] `json:"postedDate"`
	ExpiryDate     Optional[time.Time] `json:"expiryDate" validate:"omitempty,gt"`
	IsActive       Optional[bool]      `json:"isActive"`
	ApplicationURL Optional[string]    `json:"applicationUrl" validate:"omitempty,httpurl,max=500"`

	// Version, when sent, must match the stored version.
	Version Optional[int] `json:"version" validate:"omitempty,gte=0"`
}

func (r JobUpdateRequest) SalaryBounds() (min, max *decimal.Decimal) {
	return r.SalaryMin.Ptr(), r.SalaryMax.Ptr()
}

type JobResponse struct {
	ID              uint                   `json:"id"`
	Title           string                 `json:"title"`
	Location        string                 `json:"location"`
	SalaryMin       *decimal.Decimal       `json:"salaryMin"`
	SalaryMax       *decimal.Decimal       `json:"salaryMax"`
	JobType         models.JobType         `json:"jobType"`
	ExperienceLevel models.ExperienceLevel `json:"experienceLevel"`
	RemoteOption    models.RemoteOption    `json:"remoteOption"`
	PostedDate      time.Time              `json:"postedDate"`
	IsActive        bool                   `json:"isActive"`
	Version         int                    `json:"version"`
	Company         *CompanySummary        `json:"company"`
}

// JobDetailResponse flattens JobResponse and adds the detail-only fields.
type JobDetailResponse struct {
	JobResponse
	Description    string     `json:"description"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	ApplicationURL *string    `json:"applicationUrl"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
