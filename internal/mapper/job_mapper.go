package mapper

import (
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/models"
)

// JobFromCreate builds a job from req. Jobs are active unless req says
// otherwise; a zero PostedDate is filled in on insert.
func JobFromCreate(req dtos.JobCreateRequest) *models.Job {
	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		CompanyID:       req.CompanyID,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		RemoteOption:    req.RemoteOption,
		ExpiryDate:      req.ExpiryDate,
		IsActive:        true,
		ApplicationURL:  req.ApplicationURL,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if req.PostedDate != nil {
		job.PostedDate = *req.PostedDate
	}
	return job
}

// ApplyJobUpdate copies the fields present in req onto job. The company
// association is not touched; callers reload it when CompanyID changes.
func ApplyJobUpdate(job *models.Job, req dtos.JobUpdateRequest) {
	setValue(&job.Title, req.Title)
	setValue(&job.Description, req.Description)
	setValue(&job.CompanyID, req.CompanyID)
	setValue(&job.Location, req.Location)
	setNullable(&job.SalaryMin, req.SalaryMin)
	setNullable(&job.SalaryMax, req.SalaryMax)
	setValue(&job.JobType, req.JobType)
	setValue(&job.ExperienceLevel, req.ExperienceLevel)
	setValue(&job.RemoteOption, req.RemoteOption)
	setValue(&job.PostedDate, req.PostedDate)
	setNullable(&job.ExpiryDate, req.ExpiryDate)
	setValue(&job.IsActive, req.IsActive)
	setNullable(&job.ApplicationURL, req.ApplicationURL)
}

func JobToResponse(job *models.Job) dtos.JobResponse {
	return dtos.JobResponse{
		ID:              job.ID,
		Title:           job.Title,
		Location:        job.Location,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		RemoteOption:    job.RemoteOption,
		PostedDate:      job.PostedDate,
		IsActive:        job.IsActive,
		Version:         job.Version,
		Company:         CompanyToSummary(&job.Company),
	}
}

func JobToDetail(job *models.Job) dtos.JobDetailResponse {
	return dtos.JobDetailResponse{
		JobResponse:    JobToResponse(job),
		Description:    job.Description,
		ExpiryDate:     job.ExpiryDate,
		ApplicationURL: job.ApplicationURL,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}

// JobsToResponses maps a slice for paged listings.
func JobsToResponses(jobs []models.Job) []dtos.JobResponse {
	out := make([]dtos.JobResponse, len(jobs))
	for i := range jobs {
		out[i] = JobToResponse(&jobs[i])
	}
	return out
}

func CompaniesToResponses(companies []models.Company) []dtos.CompanyResponse {
	out := make([]dtos.CompanyResponse, len(companies))
	for i := range companies {
		out[i] = CompanyToResponse(&companies[i])
	}
	return out
}
