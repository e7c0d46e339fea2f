package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse định nghĩa response cho user
type UserResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Role       string           `json:"role"`
	BaseSalary *decimal.Decimal `json:"baseSalary"`
	WorkDays   []int64          `json:"workDays"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// CreateUserRequest định nghĩa request tạo user
type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required"`
	Role       string  `json:"role" binding:"required"`
	BaseSalary *string `json:"baseSalary"` // chuỗi decimal hoặc null
	WorkDays   []int64 `json:"workDays"`
}

// UpdateUserRequest định nghĩa request cập nhật user; field rỗng thì giữ nguyên.
type UpdateUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Password   *string `json:"password,omitempty"` // admin reset mật khẩu
	BaseSalary *string `json:"baseSalary"`
	WorkDays   []int64 `json:"workDays"`
}

// UserSearchResult là một dòng kết quả tìm kiếm mờ theo tên
type UserSearchResult struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Score int    `json:"score"`
}
