package routes

import (
	"net/http"

	"iinreg_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути сохранены как у старого API (без версионного префикса),
// админские эндпоинты закрыты adminAuth middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, adminAuth gin.HandlerFunc) {
	// liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})

	// Registration / Client
	r.GET("/person/:iin", h.Person.GetPerson)
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.GET("/get_status", h.Auth.GetStatus)

	// Admin
	r.POST("/admin/login", h.Admin.Login)
	admin := r.Group("/", adminAuth)
	{
		admin.GET("/get_users", h.Admin.GetUsers)
		admin.PUT("/update_status", h.Admin.UpdateStatus)
	}
}
