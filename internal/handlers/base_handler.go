package handlers

import (
	"net/http"

	"jobhub_backend/internal/validator"
	"jobhub_backend/pkg/apperrors"
	"jobhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// BaseHandler - общие помощники всех хендлеров: биндинг, валидация,
// единый ответ об ошибке
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON биндит тело запроса и валидирует DTO.
// При ошибке сам пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidateQuery биндит query-параметры и валидирует DTO
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

// HandleServiceError отдает ошибку сервиса в едином формате
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// CurrentUserID достает ID пользователя, положенный auth middleware.
// Пустой ID на защищенном маршруте - ошибка конфигурации маршрутов.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(contextkeys.UserIDKey))
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// Created - ответ 201 с телом
func (h *BaseHandler) Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// OK - ответ 200 с телом
func (h *BaseHandler) OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}
