package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"hris/constants"
	"hris/models"
	"hris/services/logger"
	"hris/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

const (
	DefaultTimezone = "Asia/Jakarta"
	WorkStartHour   = 8
)

const (
	ErrCodeInvalidTimezone = "INVALID_TIMEZONE"
	ErrCodeAlphaMarkFailed = "ALPHA_MARK_FAILED"
	ErrCodeInvalidUserID   = "INVALID_USER_ID"
)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

type AttendanceServiceInterface interface {
	MarkAlphaForDate(ctx context.Context, date time.Time) (int, error)
	MarkDailyAlpha(ctx context.Context, notificationService notification.Service) error
}

type AttendanceService struct {
	db     *gorm.DB
	logger logger.Logger
	melody *melody.Melody
}

type AttendanceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAttendanceService(opts AttendanceServiceOptions, m *melody.Melody) *AttendanceService {
	return &AttendanceService{
		db:     opts.DB,
		logger: opts.Logger,
		melody: m,
	}
}

// IsLate báo một mốc clock-in có trễ giờ làm hay không, tính theo giờ Jakarta.
func IsLate(clockIn time.Time) bool {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	local := clockIn.In(loc)
	return local.Hour() >= WorkStartHour && !(local.Hour() == WorkStartHour && local.Minute() == 0 && local.Second() == 0)
}

// scheduledEmployees lấy các nhân viên có lịch làm việc vào thứ cho trước
func (s *AttendanceService) scheduledEmployees(ctx context.Context, weekday time.Weekday) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("role = ?", constants.RoleEmployee).
		Where("? = ANY(work_days)", int64(weekday)).
		Find(&users).Error
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeAlphaMarkFailed,
			Message: "lỗi khi truy vấn nhân viên theo lịch làm việc",
			Err:     err,
		}
	}
	return users, nil
}

// MarkAlphaForDate ghi trạng thái ALPHA cho mọi nhân viên có lịch làm việc
// vào ngày đó mà không có bất kỳ bản ghi chấm công nào. Trả về số bản ghi
// đã tạo.
func (s *AttendanceService) MarkAlphaForDate(ctx context.Context, date time.Time) (int, error) {
	users, err := s.scheduledEmployees(ctx, date.Weekday())
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		s.logger.Info("ℹ️ Không có nhân viên nào có lịch làm việc ngày %s.", date.Format("2006-01-02"))
		return 0, nil
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, &ServiceError{
			Code:    ErrCodeAlphaMarkFailed,
			Message: "lỗi khi bắt đầu transaction",
			Err:     tx.Error,
		}
	}

	day := date.Format("2006-01-02")
	marked := 0
	for _, u := range users {
		var existing models.Attendance
		err := tx.Where("user_id = ? AND date = ?", u.ID, day).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return 0, &ServiceError{
				Code:    ErrCodeAlphaMarkFailed,
				Message: fmt.Sprintf("lỗi kiểm tra chấm công cho user %d", u.ID),
				Err:     err,
			}
		}

		record := models.Attendance{
			UserID: u.ID,
			Date:   date,
			Status: models.AttendanceStatusAlpha,
		}
		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return 0, &ServiceError{
				Code:    ErrCodeAlphaMarkFailed,
				Message: fmt.Sprintf("lỗi ghi ALPHA cho user %d", u.ID),
				Err:     err,
			}
		}
		marked++
	}

	if err := tx.Commit().Error; err != nil {
		return 0, &ServiceError{
			Code:    ErrCodeAlphaMarkFailed,
			Message: "lỗi khi commit transaction",
			Err:     err,
		}
	}

	s.logger.Info("✅ Đã ghi ALPHA cho %d nhân viên ngày %s.", marked, day)
	return marked, nil
}

// MarkDailyAlpha là entry cho cron job lúc nửa đêm: chốt ngày hôm trước
// theo giờ Jakarta rồi thông báo kết quả qua websocket.
func (s *AttendanceService) MarkDailyAlpha(ctx context.Context, notificationService notification.Service) error {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidTimezone,
			Message: "timezone không hợp lệ",
			Err:     err,
		}
	}

	yesterday := time.Now().In(loc).AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, loc)

	marked, err := s.MarkAlphaForDate(ctx, yesterday)
	if err != nil {
		s.logger.Error("❌ Lỗi chốt ALPHA: %v", err)
		return err
	}

	if marked > 0 {
		message := fmt.Sprintf("🔔 Đã ghi vắng không phép cho %d nhân viên ngày %s.", marked, yesterday.Format("2006-01-02"))
		if err := notificationService.SendMessage(message); err != nil {
			s.logger.Error("❌ Lỗi gửi thông báo: %v", err)
		}
	}
	return nil
}

type AttendanceServiceAdapter struct {
	service *AttendanceService
}

func NewAttendanceServiceAdapter(service *AttendanceService) *AttendanceServiceAdapter {
	return &AttendanceServiceAdapter{service: service}
}

func (a *AttendanceServiceAdapter) MarkDailyAlpha(m *melody.Melody) error {
	notificationService := notification.NewMelodyService(m)
	return a.service.MarkDailyAlpha(context.Background(), notificationService)
}
