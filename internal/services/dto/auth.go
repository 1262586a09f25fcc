package dto

import "iinreg_backend/internal/models"

// RegisterRequest - тело POST /register
type RegisterRequest struct {
	IIN string `json:"iin" form:"iin" validate:"required,iin"`
}

// RegisterResult - исход регистрации.
// Password заполнен только при создании нового пользователя.
type RegisterResult struct {
	AlreadyExists bool
	Password      string
	AccessToken   string
}

// LoginRequest - тело POST /login
type LoginRequest struct {
	IIN      string `json:"iin" form:"iin" validate:"required,iin"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResult - исход логина: три вердикта из спеки API
// (не зарегистрирован / неверный пароль / успех)
type LoginResult struct {
	Exists      bool
	Correct     bool
	AccessToken string
}

// StatusResult - существование учетки + текущий статус
type StatusResult struct {
	Exists bool
	Status models.UserStatus
}

// UpdateStatusRequest - тело PUT /update_status
type UpdateStatusRequest struct {
	IIN    string `json:"iin" form:"iin" validate:"required,iin"`
	Status string `json:"status" form:"status" validate:"required,oneof=waiting accepted rejected"`
}

// AdminLoginRequest - тело POST /admin/login
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}
