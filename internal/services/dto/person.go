package dto

import "iinreg_backend/internal/models"

// Person - персональные данные по ИИН в формате внешнего сервиса.
// Этот же формат отдается клиенту в /person/{iin}.
type Person struct {
	Address     string  `json:"address" validate:"required"`
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	SecondName  string  `json:"secondName" validate:"required"`
	Org         string  `json:"org" validate:"required"`
	BirthDate   string  `json:"birthDate" validate:"required"`
	PhoneNumber *string `json:"phoneNumber"`
}

// PersonFromModel конвертирует запись кэша в DTO
func PersonFromModel(data *models.UserData) *Person {
	if data == nil {
		return nil
	}
	return &Person{
		Address:     data.Address,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		SecondName:  data.SecondName,
		Org:         data.Org,
		BirthDate:   data.BirthDate,
		PhoneNumber: data.PhoneNumber,
	}
}

// ToModel конвертирует DTO в запись кэша для сохранения
func (p *Person) ToModel(iin string) *models.UserData {
	return &models.UserData{
		IIN:         iin,
		Address:     p.Address,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		SecondName:  p.SecondName,
		Org:         p.Org,
		BirthDate:   p.BirthDate,
		PhoneNumber: p.PhoneNumber,
	}
}

// PersonResponse - ответ /person/{iin}: статус регистрации + данные
type PersonResponse struct {
	IsExists bool               `json:"is_exists"`
	Status   *models.UserStatus `json:"status,omitempty"`
	Person   *Person            `json:"person,omitempty"`
}

// UserResponse - элемент списка /get_users
type UserResponse struct {
	IIN       string            `json:"iin"`
	CreatedAt string            `json:"created_at"`
	Status    models.UserStatus `json:"status"`
	UserData  *Person           `json:"user_data,omitempty"`
}
