package handlers

import (
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/middleware"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler - публичный поиск вакансий, отклики соискателей
// и управление вакансиями компании
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	tokens     *auth.TokenManager
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, tokens *auth.TokenManager) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService, tokens: tokens}
}

func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Публичные маршруты: поиск и карточка доступны без токена
	router.GET("/jobs", h.Search)
	router.GET("/jobs/:id", h.Get)

	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(h.tokens))
	{
		seeker := authed.Group("")
		seeker.Use(middleware.RequireRoles(models.UserRoleSeeker))
		{
			seeker.POST("/jobs/:id/apply", h.Apply)
			seeker.GET("/applications", h.ListApplications)
		}

		company := authed.Group("")
		company.Use(middleware.RequireRoles(models.UserRoleCompany))
		{
			company.POST("/jobs", h.Create)
			company.PUT("/jobs/:id", h.Update)
			company.GET("/company/jobs", h.ListCompanyJobs)
		}
	}
}

func (h *JobHandler) Search(c *gin.Context) {
	var req dto.JobSearchRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.jobService.SearchJobs(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.jobService.ApplyToJob(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, application)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	applications, err := h.jobService.ListUserApplications(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"applications": applications})
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) ListCompanyJobs(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListCompanyJobs(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"jobs": jobs})
}
