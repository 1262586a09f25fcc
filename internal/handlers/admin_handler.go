package handlers

import (
	"net/http"

	"iinreg_backend/internal/models"
	"iinreg_backend/internal/services"
	"iinreg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// Login обменивает админский пароль на bearer-токен для /get_users и /update_status
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	token, err := h.adminService.Login(req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// GetUsers возвращает всех пользователей с вложенными персональными данными
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateStatus выставляет статус верификации по ИИН
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	err := h.adminService.UpdateStatus(c.Request.Context(), h.GetDB(c), req.IIN, models.UserStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
