package models

import (
	"time"
)

// Trạng thái chấm công, chuỗi theo hợp đồng API với app mobile (tiếng Indo).
const (
	AttendanceStatusHadir     = "HADIR"     // có mặt
	AttendanceStatusIzin      = "IZIN"      // nghỉ có phép
	AttendanceStatusSakit     = "SAKIT"     // nghỉ ốm
	AttendanceStatusAlpha     = "ALPHA"     // vắng không phép
	AttendanceStatusCuti      = "CUTI"      // nghỉ phép năm
	AttendanceStatusLibur     = "LIBUR"     // ngày nghỉ lễ
	AttendanceStatusSelesai   = "SELESAI"   // đã clock-out xong ca
	AttendanceStatusBelum     = "BELUM"     // chưa clock-in
	AttendanceStatusTerlambat = "TERLAMBAT" // đi trễ
)

// AllAttendanceStatuses dùng cho filter ở màn quản trị.
var AllAttendanceStatuses = []string{
	AttendanceStatusHadir,
	AttendanceStatusIzin,
	AttendanceStatusSakit,
	AttendanceStatusAlpha,
	AttendanceStatusCuti,
	AttendanceStatusLibur,
	AttendanceStatusSelesai,
	AttendanceStatusBelum,
	AttendanceStatusTerlambat,
}

// AdminSettableAttendanceStatuses là các trạng thái admin được phép set tay;
// HADIR/TERLAMBAT/SELESAI chỉ sinh ra từ clock-in/clock-out thật.
var AdminSettableAttendanceStatuses = []string{
	AttendanceStatusIzin,
	AttendanceStatusSakit,
	AttendanceStatusCuti,
	AttendanceStatusAlpha,
	AttendanceStatusLibur,
}

func IsAttendanceStatus(s string) bool {
	for _, st := range AllAttendanceStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func IsAdminSettableAttendanceStatus(s string) bool {
	for _, st := range AdminSettableAttendanceStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type Attendance struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"userId" gorm:"index;not null"`
	Date           time.Time  `json:"date" gorm:"type:date;not null;index"`
	ClockIn        *time.Time `json:"clockIn"`
	ClockOut       *time.Time `json:"clockOut"`
	Status         string     `json:"status" gorm:"type:varchar(16);not null"`
	Notes          *string    `json:"notes"`
	LatitudeIn     *float64   `json:"latitudeIn"`
	LongitudeIn    *float64   `json:"longitudeIn"`
	LatitudeOut    *float64   `json:"latitudeOut"`
	LongitudeOut   *float64   `json:"longitudeOut"`
	SelfieInURL    *string    `json:"selfieInUrl"`
	SelfieOutURL   *string    `json:"selfieOutUrl"`
	DeviceModel    *string    `json:"deviceModel"`
	DeviceOS       *string    `json:"deviceOS"`
	IsMockLocation *bool      `json:"isMockLocation"`
	GPSAccuracy    *float64   `json:"gpsAccuracy"` // độ chính xác GPS theo mét
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}
