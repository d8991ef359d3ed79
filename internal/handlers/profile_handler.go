package handlers

import (
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/middleware"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ProfileHandler - профиль текущего пользователя
type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	tokens         *auth.TokenManager
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, tokens *auth.TokenManager) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService, tokens: tokens}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.tokens))
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}
