package models

import (
	"testing"
	"time"
)

func TestIsAttendanceStatus(t *testing.T) {
	for _, s := range AllAttendanceStatuses {
		if !IsAttendanceStatus(s) {
			t.Errorf("%s phải là trạng thái hợp lệ", s)
		}
	}
	for _, s := range []string{"", "hadir", "PRESENT", "ABSEN"} {
		if IsAttendanceStatus(s) {
			t.Errorf("%s không được coi là trạng thái hợp lệ", s)
		}
	}
}

// Các trạng thái sinh ra từ chấm công thật không được set tay.
func TestAdminSettableStatuses(t *testing.T) {
	for _, s := range AdminSettableAttendanceStatuses {
		if !IsAttendanceStatus(s) {
			t.Errorf("%s phải nằm trong tập trạng thái", s)
		}
	}

	for _, s := range []string{AttendanceStatusHadir, AttendanceStatusTerlambat, AttendanceStatusSelesai, AttendanceStatusBelum} {
		if IsAdminSettableAttendanceStatus(s) {
			t.Errorf("%s không được phép set tay", s)
		}
	}
}

func TestUserWorksOn(t *testing.T) {
	u := User{WorkDays: []int64{1, 2, 3, 4, 5}} // thứ 2 đến thứ 6

	if !u.WorksOn(time.Monday) {
		t.Error("thứ 2 phải là ngày làm việc")
	}
	if u.WorksOn(time.Sunday) {
		t.Error("chủ nhật không phải ngày làm việc")
	}

	empty := User{}
	if empty.WorksOn(time.Monday) {
		t.Error("user không có lịch thì không làm ngày nào")
	}
}
