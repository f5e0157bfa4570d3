package dtos

import "time"

type CompanyCreateRequest struct {
	Name        string  `json:"name" validate:"notblank"`
	Description *string `json:"description"`
	Website     *string `json:"website" validate:"omitempty,httpurl"`
	Location    string  `json:"location" validate:"notblank"`
}

type CompanyUpdateRequest struct {
	Name        Optional[string] `json:"name" validate:"omitempty,notblank"`
	Description Optional[string] `json:"description"`
	Website     Optional[string] `json:"website" validate:"omitempty,httpurl"`
	Location    Optional[string] `json:"location" validate:"omitempty,notblank"`

	Version Optional[int] `json:"version" validate:"omitempty,gte=0"`
}

type CompanyResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Website     *string   `json:"website"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int       `json:"version"`
}

// CompanySummary is the company as embedded in job responses.
type CompanySummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
