package dto

// DeductionTypePayload là DTO cho yêu cầu tạo/cập nhật loại khấu trừ.
// ruleAmount/rulePercentage nhận chuỗi decimal hoặc null theo hợp đồng API.
type DeductionTypePayload struct {
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description"`
	CalculationType string  `json:"calculationType" binding:"required,calctype"`
	RuleAmount      *string `json:"ruleAmount"`
	RulePercentage  *string `json:"rulePercentage"`
	IsMandatory     bool    `json:"isMandatory"`
}

// UserDeductionPayload là DTO cho yêu cầu gán khấu trừ cho user.
// assignedAmount/assignedPercentage là chuỗi thô từ form, được chuẩn hóa
// theo kiểu tính của loại khấu trừ trước khi lưu.
type UserDeductionPayload struct {
	DeductionTypeID    uint    `json:"deductionTypeId" binding:"required"`
	AssignedAmount     *string `json:"assignedAmount"`
	AssignedPercentage *string `json:"assignedPercentage"`
}
