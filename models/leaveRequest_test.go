package models

import (
	"testing"
	"time"
)

func pendingRequest() LeaveRequest {
	return LeaveRequest{
		ID:     1,
		UserID: 7,
		Status: LeaveStatusPendingApproval,
	}
}

func TestLeaveRequestApprove(t *testing.T) {
	lr := pendingRequest()
	now := time.Now()

	if err := lr.Approve(99, now); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if lr.Status != LeaveStatusApproved {
		t.Errorf("status = %s, muốn %s", lr.Status, LeaveStatusApproved)
	}
	if lr.ApprovedBy == nil || *lr.ApprovedBy != 99 {
		t.Errorf("ApprovedBy = %v, muốn 99", lr.ApprovedBy)
	}
	if lr.ApprovedAt == nil || !lr.ApprovedAt.Equal(now) {
		t.Errorf("ApprovedAt = %v, muốn %v", lr.ApprovedAt, now)
	}

	// Duyệt lần hai phải bị chặn
	if err := lr.Approve(99, now); err == nil {
		t.Fatal("duyệt đơn đã duyệt phải báo lỗi")
	}
}

func TestLeaveRequestReject(t *testing.T) {
	reason := "trùng lịch sự kiện"
	lr := pendingRequest()

	if err := lr.Reject(99, time.Now(), &reason); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if lr.Status != LeaveStatusRejected {
		t.Errorf("status = %s, muốn %s", lr.Status, LeaveStatusRejected)
	}
	if lr.RejectionReason == nil || *lr.RejectionReason != reason {
		t.Errorf("RejectionReason = %v, muốn %q", lr.RejectionReason, reason)
	}

	if err := lr.Approve(99, time.Now()); err == nil {
		t.Fatal("không được duyệt đơn đã từ chối")
	}
}

func TestLeaveRequestRejectWithoutReason(t *testing.T) {
	lr := pendingRequest()
	if err := lr.Reject(99, time.Now(), nil); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if lr.RejectionReason != nil {
		t.Errorf("RejectionReason = %v, muốn nil", lr.RejectionReason)
	}
}

func TestLeaveRequestCancel(t *testing.T) {
	lr := pendingRequest()

	if err := lr.Cancel(8); err == nil {
		t.Fatal("người khác không được hủy đơn")
	}

	if err := lr.Cancel(7); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if lr.Status != LeaveStatusCancelled {
		t.Errorf("status = %s, muốn %s", lr.Status, LeaveStatusCancelled)
	}

	if err := lr.Cancel(7); err == nil {
		t.Fatal("không hủy được đơn đã hủy")
	}
}
