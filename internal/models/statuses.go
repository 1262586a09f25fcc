package models

// UserStatus - статус верификации пользователя
type UserStatus string

const (
	UserStatusWaiting  UserStatus = "waiting"
	UserStatusAccepted UserStatus = "accepted"
	UserStatusRejected UserStatus = "rejected"
)

// IsValid проверяет что значение входит в допустимый набор статусов
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusWaiting, UserStatusAccepted, UserStatusRejected:
		return true
	}
	return false
}
