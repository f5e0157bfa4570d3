package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board-api/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter wires middleware and routes.
func NewRouter(allowedOrigins []string, log *zap.Logger, jobs *JobHandler, companies *CompanyHandler, health *HealthHandler) *gin.Engine {
	r := gin.New()

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		cors.New(config),
		middleware.ErrorHandler(log),
	)

	r.GET("/health", health.HealthCheck)

	api := r.Group("/api")
	{
		companyRoutes := api.Group("/companies")
		companyRoutes.GET("", companies.ListCompanies)
		companyRoutes.POST("", companies.CreateCompany)
		companyRoutes.GET("/:id", companies.GetCompany)
		companyRoutes.PATCH("/:id", companies.UpdateCompany)
		companyRoutes.DELETE("/:id", companies.DeleteCompany)

		jobRoutes := api.Group("/jobs")
		jobRoutes.GET("", jobs.ListJobs)
		jobRoutes.POST("", jobs.CreateJob)
		jobRoutes.GET("/active", jobs.ListActiveJobs)
		jobRoutes.GET("/:id", jobs.GetJob)
		jobRoutes.PATCH("/:id", jobs.UpdateJob)
		jobRoutes.DELETE("/:id", jobs.DeleteJob)
	}

	return r
}
