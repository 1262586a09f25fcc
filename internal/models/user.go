package models

import "time"

// User - учетная запись, ключ - ИИН. Создается только при регистрации,
// после создания меняется только Status.
type User struct {
	IIN          string     `gorm:"column:iin;primaryKey;type:varchar(12)" json:"iin"`
	PasswordHash string     `gorm:"not null" json:"-"`
	AccessToken  string     `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Status       UserStatus `gorm:"type:varchar(20);default:'waiting'" json:"status"`

	// Relations
	UserData *UserData `gorm:"foreignKey:IIN;references:IIN" json:"user_data,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserData - персональные данные по ИИН, один-к-одному с User.
// Заполняется один раз: либо из внешнего сервиса, либо админом.
// Имена колонок повторяют формат внешнего сервиса.
type UserData struct {
	IIN         string  `gorm:"column:iin;primaryKey;type:varchar(12)" json:"-"`
	Address     string  `gorm:"column:address;not null" json:"address"`
	FirstName   string  `gorm:"column:firstName;not null" json:"firstName"`
	LastName    string  `gorm:"column:lastName;not null" json:"lastName"`
	SecondName  string  `gorm:"column:secondName;not null" json:"secondName"`
	Org         string  `gorm:"column:org;not null" json:"org"`
	BirthDate   string  `gorm:"column:birthDate;not null" json:"birthDate"`
	PhoneNumber *string `gorm:"column:phoneNumber" json:"phoneNumber"`
}

func (UserData) TableName() string {
	return "user_data"
}
