package models

import "time"

// User - пациент телемедицинского сервиса.
// username, email и mobile глобально уникальны; пароль хранится
// только как bcrypt-хеш и никогда не сериализуется в JSON.
type User struct {
	BaseModel
	FullName     string    `gorm:"not null" json:"fullname"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Mobile       string    `gorm:"uniqueIndex;not null" json:"mobile"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Address      string    `gorm:"not null" json:"address"`
	Occupation   string    `gorm:"not null" json:"occupation"`
	DOB          time.Time `gorm:"not null" json:"dob"`
}
