// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"koperasiku_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // HIGH | LOW; kosong = LOW
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelUser(u *model.UserModel) UserResponse {
	photo := ""
	if u.PhotoURL != nil {
		photo = *u.PhotoURL
	}
	return UserResponse{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		PhotoURL:  photo,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
