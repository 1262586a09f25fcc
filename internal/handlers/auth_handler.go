package handlers

import (
	"net/http"

	"iinreg_backend/internal/services"
	"iinreg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "access_token"

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	cookieTTLDays int
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookieTTLDays int) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		cookieTTLDays: cookieTTLDays,
	}
}

// setSessionCookie выставляет cookie access_token с клиентским сроком
// жизни (серверного истечения у токена нет)
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.cookieTTLDays * 24 * 60 * 60
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, false)
}

// Register создает учетку по ИИН и один раз показывает сгенерированный
// пароль. Повторная регистрация возвращает is_exists без пароля.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), h.GetDB(c), req.IIN)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"is_exists": true})
		return
	}

	h.setSessionCookie(c, result.AccessToken)
	c.JSON(http.StatusOK, gin.H{
		"is_exists": false,
		"password":  result.Password,
	})
}

// Login различает три исхода: не зарегистрирован, неверный пароль, успех
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), h.GetDB(c), req.IIN, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !result.Exists {
		c.JSON(http.StatusOK, gin.H{"is_exists": false})
		return
	}
	if !result.Correct {
		c.JSON(http.StatusOK, gin.H{"is_exists": true, "is_correct": false})
		return
	}

	h.setSessionCookie(c, result.AccessToken)
	c.Header(sessionCookieName, result.AccessToken)
	c.JSON(http.StatusOK, gin.H{"is_exists": true, "is_correct": true})
}

// GetStatus резолвит сессию по cookie и возвращает текущий статус
func (h *AuthHandler) GetStatus(c *gin.Context) {
	token, _ := c.Cookie(sessionCookieName)

	result, err := h.authService.StatusByToken(c.Request.Context(), h.GetDB(c), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !result.Exists {
		c.JSON(http.StatusOK, gin.H{"is_exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_exists": true, "status": result.Status})
}
