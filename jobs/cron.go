package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// AttendanceMarker định nghĩa interface cho việc chốt vắng mặt hằng ngày
type AttendanceMarker interface {
	MarkDailyAlpha(m *melody.Melody) error
}

var attendanceMarker AttendanceMarker

// SetAttendanceMarker thiết lập implementation cho AttendanceMarker
func SetAttendanceMarker(marker AttendanceMarker) {
	attendanceMarker = marker
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 00:30 mỗi ngày, chốt ALPHA cho ngày hôm trước
	_, err := c.AddFunc("30 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy chốt vắng mặt hằng ngày lúc: %v", now)
		if attendanceMarker == nil {
			log.Printf("Lỗi: AttendanceMarker chưa được thiết lập")
			return
		}
		if err := attendanceMarker.MarkDailyAlpha(m); err != nil {
			log.Printf("Lỗi khi chốt vắng mặt: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
