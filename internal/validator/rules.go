package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации
func registerCustomRules(v *validator.Validate) error {
	// iin: 12 цифр
	if err := v.RegisterValidation("iin", validateIIN); err != nil {
		return err
	}
	return nil
}

func validateIIN(fl validator.FieldLevel) bool {
	return IsValidIIN(fl.Field().String())
}

// IsValidIIN проверяет формат ИИН: ровно 12 цифр
func IsValidIIN(iin string) bool {
	if len(iin) != 12 {
		return false
	}
	for _, r := range iin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
