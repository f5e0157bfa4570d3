package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"github.com/justsurfingit/job-board-api/internal/handlers"
	"github.com/justsurfingit/job-board-api/internal/middleware"
	"github.com/justsurfingit/job-board-api/internal/pagination"
	"github.com/justsurfingit/job-board-api/internal/services"
	"github.com/justsurfingit/job-board-api/internal/testutil"
	"github.com/justsurfingit/job-board-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := database.NewStore(testutil.NewDB(t))
	v := validation.New()
	log := zap.NewNop()

	return handlers.NewRouter(nil, log,
		handlers.NewJobHandler(services.NewJobService(store, v, log)),
		handlers.NewCompanyHandler(services.NewCompanyService(store, v, log)),
		handlers.NewHealthHandler(store),
	)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createCompany(t *testing.T, r http.Handler, name string) dtos.CompanyResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/companies", fmt.Sprintf(`{"name":%q,"location":"Berlin","website":"https://example.com"}`, name))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dtos.CompanyResponse](t, w)
}

func createJob(t *testing.T, r http.Handler, companyID uint, title string) dtos.JobResponse {
	t.Helper()
	body := fmt.Sprintf(`{
		"title": %q,
		"description": "Build APIs",
		"companyId": %d,
		"location": "Remote",
		"salaryMin": 60000,
		"salaryMax": 90000,
		"jobType": "FULL_TIME",
		"experienceLevel": "SENIOR",
		"remoteOption": "REMOTE",
		"applicationUrl": "https://example.com/apply"
	}`, title, companyID)
	w := do(t, r, http.MethodPost, "/api/jobs", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dtos.JobResponse](t, w)
}

func TestHealthCheck(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","database":"UP"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCompanyEndpoints(t *testing.T) {
	r := newRouter(t)
	c := createCompany(t, r, "Acme")
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, 1, c.Version)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/api/companies/%d", c.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/companies/%d", c.ID), `{"description":"Rockets","website":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dtos.CompanyResponse](t, w)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Rockets", *updated.Description)
	assert.Nil(t, updated.Website)
	assert.Equal(t, 2, updated.Version)

	w = do(t, r, http.MethodGet, "/api/companies?sort=name,desc&size=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[pagination.Page[dtos.CompanyResponse]](t, w)
	assert.EqualValues(t, 1, page.TotalElements)
	assert.Equal(t, 5, page.Size)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/companies/%d", c.ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/companies/%d", c.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCompany_ValidationError(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodPost, "/api/companies", `{"name":"","location":"Berlin","website":"not-a-url"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[dtos.ErrorResponse](t, w)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "name")
	assert.Equal(t, "website must be a valid URL", body.Errors["website"])
	assert.False(t, body.Timestamp.IsZero())
}

func TestJobEndpoints(t *testing.T) {
	r := newRouter(t)
	c := createCompany(t, r, "Acme")
	j := createJob(t, r, c.ID, "Backend Engineer")
	assert.True(t, j.IsActive)
	require.NotNil(t, j.Company)
	assert.Equal(t, "Acme", j.Company.Name)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/api/jobs/%d", j.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Build APIs", detail["description"])
	assert.Equal(t, "https://example.com/apply", detail["applicationUrl"])
	assert.Equal(t, float64(90000), detail["salaryMax"])
	assert.Contains(t, detail, "createdAt")

	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/jobs/%d", j.ID), `{"isActive":false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, decode[dtos.JobResponse](t, w).IsActive)

	w = do(t, r, http.MethodGet, "/api/jobs/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	active := decode[pagination.Page[dtos.JobResponse]](t, w)
	assert.Empty(t, active.Content)
	assert.Equal(t, 20, active.Size)

	w = do(t, r, http.MethodGet, "/api/jobs?sort=title,asc,evil,desc", "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[pagination.Page[dtos.JobResponse]](t, w)
	require.Len(t, all.Content, 1)
}

func TestCreateJob_UnknownCompany(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodPost, "/api/jobs", `{
		"title": "Engineer", "description": "d", "companyId": 77, "location": "Remote",
		"jobType": "FULL_TIME", "experienceLevel": "MID", "remoteOption": "ONSITE"
	}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Company not found with id: 77", decode[dtos.ErrorResponse](t, w).Message)
}

func TestCreateJob_InvalidSalaryAndEnum(t *testing.T) {
	r := newRouter(t)
	c := createCompany(t, r, "Acme")
	w := do(t, r, http.MethodPost, "/api/jobs", fmt.Sprintf(`{
		"title": "Engineer", "description": "d", "companyId": %d, "location": "Remote",
		"salaryMin": 100, "salaryMax": 50,
		"jobType": "GIG", "experienceLevel": "MID", "remoteOption": "ONSITE"
	}`, c.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[dtos.ErrorResponse](t, w)
	assert.Equal(t, validation.SalaryRangeMessage, body.Errors["salaryMax"])
	assert.Contains(t, body.Errors, "jobType")
}

func TestUpdateJob_StaleVersion(t *testing.T) {
	r := newRouter(t)
	c := createCompany(t, r, "Acme")
	j := createJob(t, r, c.ID, "Engineer")
	path := fmt.Sprintf("/api/jobs/%d", j.ID)

	w := do(t, r, http.MethodPatch, path, `{"title":"First","version":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodPatch, path, `{"title":"Second","version":1}`)
	require.Equal(t, http.StatusConflict, w.Code)
	body := decode[dtos.ErrorResponse](t, w)
	assert.Equal(t, "The resource was modified by another user. Please refresh and try again.", body.Message)
	assert.Equal(t, http.StatusConflict, body.Status)
}

func TestUpdate_NullOnRequiredFieldLeavesItUnchanged(t *testing.T) {
	r := newRouter(t)
	c := createCompany(t, r, "Acme")
	j := createJob(t, r, c.ID, "Backend Engineer")

	w := do(t, r, http.MethodPatch, fmt.Sprintf("/api/jobs/%d", j.ID), `{"title":null,"companyId":null,"version":null,"salaryMin":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	job := decode[dtos.JobResponse](t, w)
	assert.Equal(t, "Backend Engineer", job.Title)
	require.NotNil(t, job.Company)
	assert.Equal(t, c.ID, job.Company.ID)
	assert.Nil(t, job.SalaryMin)
	assert.Equal(t, 2, job.Version)

	w = do(t, r, http.MethodPatch, fmt.Sprintf("/api/companies/%d", c.ID), `{"name":null,"location":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	company := decode[dtos.CompanyResponse](t, w)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "Berlin", company.Location)
}

func TestDeleteJob_Missing(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodDelete, "/api/jobs/12345", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetJob_Missing(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodGet, "/api/jobs/8", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found with id: 8", decode[dtos.ErrorResponse](t, w).Message)
}

func TestBadRequests(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"non-numeric id", http.MethodGet, "/api/jobs/abc", "", "Validation failed"},
		{"zero id", http.MethodDelete, "/api/companies/0", "", "Validation failed"},
		{"malformed json", http.MethodPost, "/api/companies", `{"name":`, "Malformed request body"},
		{"page out of range", http.MethodGet, "/api/jobs?size=1000", "", "Validation failed"},
		{"huge page number", http.MethodGet, "/api/jobs?page=9223372036854775807&size=1", "", "Validation failed"},
		{"non-numeric page", http.MethodGet, "/api/companies?page=x", "", "Invalid paging parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tt.message, decode[dtos.ErrorResponse](t, w).Message)
		})
	}
}
