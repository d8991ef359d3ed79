package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"jobhub_backend/internal/services"
	"jobhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// stateCookieName - короткоживущая anti-CSRF кука OAuth-потока
const stateCookieName = "oauth_state"

// stateCookieMaxAge - окно на прохождение авторизации у провайдера, секунды
const stateCookieMaxAge = 600

// OAuthHandler - вход через внешнего провайдера идентификации
type OAuthHandler struct {
	*BaseHandler
	oauthService services.OAuthService
}

func NewOAuthHandler(base *BaseHandler, oauthService services.OAuthService) *OAuthHandler {
	return &OAuthHandler{BaseHandler: base, oauthService: oauthService}
}

func (h *OAuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	oauth := router.Group("/auth/oauth")
	{
		oauth.GET("/start", h.Start)
		oauth.GET("/callback", h.Callback)
	}
}

// Start генерирует state, запоминает его в куке и отправляет
// пользователя к провайдеру
func (h *OAuthHandler) Start(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.AuthCodeURL(state))
}

// Callback сверяет state с кукой и завершает авторизацию
func (h *OAuthHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != cookieState {
		h.HandleServiceError(c, apperrors.ErrOAuthStateMismatch)
		return
	}

	// Кука одноразовая
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing authorization code"))
		return
	}

	resp, err := h.oauthService.CompleteAuthorization(c.Request.Context(), code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, resp)
}

func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
