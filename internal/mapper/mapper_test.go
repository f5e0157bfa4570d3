package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleJob() *models.Job {
	min, max := decimal.NewFromInt(1000), decimal.NewFromInt(2000)
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Job{
		ID:              7,
		Title:           "Engineer",
		Description:     "Build things",
		CompanyID:       3,
		Company:         models.Company{ID: 3, Name: "Acme", Location: "Berlin"},
		Location:        "Remote",
		SalaryMin:       &min,
		SalaryMax:       &max,
		JobType:         models.JobTypeFullTime,
		ExperienceLevel: models.ExperienceMid,
		RemoteOption:    models.RemoteRemote,
		PostedDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:      &expiry,
		IsActive:        true,
		ApplicationURL:  strPtr("https://acme.example/apply"),
		Version:         4,
	}
}

func TestJobFromCreate_Defaults(t *testing.T) {
	job := JobFromCreate(dtos.JobCreateRequest{Title: "Engineer", CompanyID: 3})
	assert.True(t, job.IsActive)
	assert.True(t, job.PostedDate.IsZero())

	inactive := false
	posted := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	job = JobFromCreate(dtos.JobCreateRequest{IsActive: &inactive, PostedDate: &posted})
	assert.False(t, job.IsActive)
	assert.Equal(t, posted, job.PostedDate)
}

func TestApplyJobUpdate_OnlyTouchesSentFields(t *testing.T) {
	job := sampleJob()
	before := *job

	var req dtos.JobUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Lead Engineer","salaryMax":null,"isActive":false}`), &req))
	ApplyJobUpdate(job, req)

	assert.Equal(t, "Lead Engineer", job.Title)
	assert.Nil(t, job.SalaryMax)
	assert.False(t, job.IsActive)

	assert.Equal(t, before.Description, job.Description)
	assert.Equal(t, before.SalaryMin, job.SalaryMin)
	assert.Equal(t, before.ExpiryDate, job.ExpiryDate)
	assert.Equal(t, before.ApplicationURL, job.ApplicationURL)
	assert.Equal(t, before.CompanyID, job.CompanyID)
	assert.Equal(t, before.Version, job.Version)
}

func TestApplyJobUpdate_EmptyPayloadChangesNothing(t *testing.T) {
	job := sampleJob()
	before := *job
	ApplyJobUpdate(job, dtos.JobUpdateRequest{})
	assert.Equal(t, before, *job)
}

func TestApplyCompanyUpdate(t *testing.T) {
	c := &models.Company{Name: "Acme", Location: "Berlin", Description: strPtr("Old"), Website: strPtr("https://acme.example")}

	ApplyCompanyUpdate(c, dtos.CompanyUpdateRequest{
		Location:    dtos.Some("Paris"),
		Description: dtos.Null[string](),
	})

	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "Paris", c.Location)
	assert.Nil(t, c.Description)
	require.NotNil(t, c.Website)
	assert.Equal(t, "https://acme.example", *c.Website)
}

func TestJobToDetail(t *testing.T) {
	detail := JobToDetail(sampleJob())
	require.NotNil(t, detail.Company)
	assert.Equal(t, "Acme", detail.Company.Name)
	assert.Equal(t, "Build things", detail.Description)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Engineer", body["title"])
	assert.Equal(t, float64(2000), body["salaryMax"])
	assert.Equal(t, "https://acme.example/apply", body["applicationUrl"])
	assert.Contains(t, body, "company")
}

func TestCompanyToSummary_NotLoaded(t *testing.T) {
	assert.Nil(t, CompanyToSummary(&models.Company{}))
}
