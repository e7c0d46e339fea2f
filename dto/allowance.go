package dto

// AllowanceTypePayload là DTO cho yêu cầu tạo/cập nhật loại phụ cấp
type AllowanceTypePayload struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsFixed     bool    `json:"isFixed"`
}

// UserAllowancePayload là DTO cho yêu cầu gán phụ cấp cho user
type UserAllowancePayload struct {
	AllowanceTypeID uint   `json:"allowanceTypeId" binding:"required"`
	Amount          string `json:"amount" binding:"required"` // chuỗi decimal
}
