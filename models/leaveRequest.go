package models

import (
	"errors"
	"time"
)

// Trạng thái đơn xin nghỉ, chuỗi theo hợp đồng API.
const (
	LeaveStatusPendingApproval = "PENDING_APPROVAL"
	LeaveStatusApproved        = "APPROVED"
	LeaveStatusRejected        = "REJECTED"
	LeaveStatusCancelled       = "CANCELLED"
)

type LeaveRequest struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"userId" gorm:"index;not null"`
	LeaveTypeID     uint       `json:"leaveTypeId" gorm:"not null"`
	StartDate       time.Time  `json:"startDate" gorm:"type:date;not null"`
	EndDate         time.Time  `json:"endDate" gorm:"type:date;not null"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status" gorm:"type:varchar(20);default:'PENDING_APPROVAL'"`
	ApprovedBy      *uint      `json:"approvedBy"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	RejectedBy      *uint      `json:"rejectedBy"`
	RejectedAt      *time.Time `json:"rejectedAt"`
	RejectionReason *string    `json:"rejectionReason"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	User      User      `gorm:"foreignKey:UserID" json:"user"`
	LeaveType LeaveType `gorm:"foreignKey:LeaveTypeID" json:"leaveType"`
}

// Approve chuyển đơn sang APPROVED, chỉ cho phép từ PENDING_APPROVAL.
func (r *LeaveRequest) Approve(adminID uint, now time.Time) error {
	if r.Status != LeaveStatusPendingApproval {
		return errors.New("đơn xin nghỉ không ở trạng thái chờ duyệt")
	}
	r.Status = LeaveStatusApproved
	r.ApprovedBy = &adminID
	r.ApprovedAt = &now
	return nil
}

// Reject chuyển đơn sang REJECTED kèm lý do (có thể nil).
func (r *LeaveRequest) Reject(adminID uint, now time.Time, reason *string) error {
	if r.Status != LeaveStatusPendingApproval {
		return errors.New("đơn xin nghỉ không ở trạng thái chờ duyệt")
	}
	r.Status = LeaveStatusRejected
	r.RejectedBy = &adminID
	r.RejectedAt = &now
	r.RejectionReason = reason
	return nil
}

// Cancel cho phép chính chủ hủy đơn khi còn chờ duyệt.
func (r *LeaveRequest) Cancel(userID uint) error {
	if r.UserID != userID {
		return errors.New("không được hủy đơn của người khác")
	}
	if r.Status != LeaveStatusPendingApproval {
		return errors.New("chỉ hủy được đơn đang chờ duyệt")
	}
	r.Status = LeaveStatusCancelled
	return nil
}
