package dto

import "time"

// LoginInput định nghĩa request đăng nhập
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthInput định nghĩa request đăng nhập bằng Google
type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserLoginResponse là DTO cho thông tin user trả về khi đăng nhập
type UserLoginResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
