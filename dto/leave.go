package dto

// LeaveTypePayload là DTO cho yêu cầu tạo loại nghỉ phép
type LeaveTypePayload struct {
	Name                string `json:"name" binding:"required"`
	DeductsLeaveBalance bool   `json:"deductsLeaveBalance"`
}

// CreateLeaveRequestInput là DTO cho nhân viên nộp đơn xin nghỉ
type CreateLeaveRequestInput struct {
	LeaveTypeID uint   `json:"leaveTypeId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"endDate" binding:"required"`   // YYYY-MM-DD
	Reason      string `json:"reason" binding:"required"`
}

// RejectLeaveRequestInput là DTO cho yêu cầu từ chối đơn, lý do không bắt buộc
type RejectLeaveRequestInput struct {
	RejectionReason *string `json:"rejectionReason"`
}
