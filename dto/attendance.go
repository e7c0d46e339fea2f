package dto

// AttendanceStatusRequest là DTO cho yêu cầu admin set tay trạng thái chấm công
type AttendanceStatusRequest struct {
	UserID uint    `json:"userId" binding:"required"`
	Date   string  `json:"date" binding:"required"` // YYYY-MM-DD
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// ClockRequest là DTO cho clock-in/clock-out từ app mobile (multipart form,
// kèm file selfie riêng).
type ClockRequest struct {
	Latitude       float64  `form:"latitude" binding:"required"`
	Longitude      float64  `form:"longitude" binding:"required"`
	DeviceModel    *string  `form:"deviceModel"`
	DeviceOS       *string  `form:"deviceOS"`
	IsMockLocation *bool    `form:"isMockLocation"`
	GPSAccuracy    *float64 `form:"gpsAccuracy"`
}
