package dto

import "telemind_backend/internal/models"

// RegisterRequest - все поля обязательны
type RegisterRequest struct {
	FullName   string `json:"fullname" validate:"required"`
	Username   string `json:"username" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=4"`
	Mobile     string `json:"mobile" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Occupation string `json:"occupation" validate:"required"`
	DOB        string `json:"dob" validate:"required"` // YYYY-MM-DD
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse повторяет исторический контракт логина
type LoginResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	ID       string    `json:"_id"`
	FullName string    `json:"fullname"`
	Token    string    `json:"token"`
	User     LoginUser `json:"user"`
}

type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest - частичное обновление: меняются только переданные поля.
// Переданный пароль перехешируется с новой солью.
type UpdateUserRequest struct {
	FullName   *string `json:"fullname,omitempty"`
	Username   *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=4"`
	Mobile     *string `json:"mobile,omitempty"`
	Address    *string `json:"address,omitempty"`
	Occupation *string `json:"occupation,omitempty"`
	DOB        *string `json:"dob,omitempty"`
}

// UserDisplay - публичное подмножество полей пользователя
type UserDisplay struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

func NewUserDisplay(u *models.User) *UserDisplay {
	if u == nil {
		return nil
	}
	return &UserDisplay{
		FullName: u.FullName,
		Email:    u.Email,
	}
}
