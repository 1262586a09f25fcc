package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidIIN       ErrorCode = "INVALID_IIN"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Ресурсы
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Системные ошибки
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
	CodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
)
