package controllers

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"time"
	_ "time/tzdata"

	"hris/config"
	"hris/dto"
	apperrors "hris/errors"
	"hris/models"
	"hris/response"
	"hris/services"
	"hris/services/notification"
	"hris/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type AttendanceController struct {
	m *melody.Melody
}

func NewAttendanceController(m *melody.Melody) *AttendanceController {
	return &AttendanceController{m: m}
}

// GetAttendances trả về bảng chấm công cho màn quản trị,
// lọc được theo ngày, user và trạng thái.
func GetAttendances(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := config.DB.Model(&models.Attendance{}).Preload("User")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := validator.ParseAPIDate(dateStr)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}

	if startStr := c.Query("startDate"); startStr != "" {
		start, err := validator.ParseAPIDate(startStr)
		if err != nil {
			response.BadRequest(c, "Ngày bắt đầu không hợp lệ, cần YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ?", start.Format("2006-01-02"))
	}

	if endStr := c.Query("endDate"); endStr != "" {
		end, err := validator.ParseAPIDate(endStr)
		if err != nil {
			response.BadRequest(c, "Ngày kết thúc không hợp lệ, cần YYYY-MM-DD")
			return
		}
		query = query.Where("date <= ?", end.Format("2006-01-02"))
	}

	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			response.BadRequest(c, "ID không hợp lệ")
			return
		}
		query = query.Where("user_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		if !models.IsAttendanceStatus(status) {
			response.ErrorWithCode(c, string(apperrors.ErrCodeInvalidAttendanceStatus),
				"Trạng thái chấm công không hợp lệ: "+status)
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var attendances []models.Attendance
	if err := query.Order("date DESC, user_id ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&attendances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, attendances, page, limit, int(total))
}

// UpdateAttendanceStatus cho admin set tay trạng thái một ngày của một nhân viên.
// Chỉ nhận các trạng thái set tay được; upsert theo cặp (user, ngày).
func UpdateAttendanceStatus(c *gin.Context) {
	var request dto.AttendanceStatusRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !models.IsAdminSettableAttendanceStatus(request.Status) {
		response.ErrorWithCode(c, string(apperrors.ErrCodeInvalidAttendanceStatus),
			"Trạng thái không được phép set tay: "+request.Status)
		return
	}

	date, err := validator.ParseAPIDate(request.Date)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.UserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var attendance models.Attendance
	result := config.DB.Where("user_id = ? AND date = ?", request.UserID, date.Format("2006-01-02")).First(&attendance)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		attendance = models.Attendance{
			UserID: request.UserID,
			Date:   date,
			Status: request.Status,
			Notes:  request.Notes,
		}
		if err := config.DB.Create(&attendance).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	} else {
		attendance.Status = request.Status
		if request.Notes != nil {
			attendance.Notes = request.Notes
		}
		if err := config.DB.Save(&attendance).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, attendance)
}

func uploadSelfie(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "selfies"})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

func jakartaNow() time.Time {
	loc, err := time.LoadLocation(services.DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// ClockIn nhận chấm công vào ca từ app mobile: tọa độ GPS, thông tin thiết bị
// và ảnh selfie. Vào sau giờ bắt đầu ca thì ghi TERLAMBAT thay vì HADIR.
func (ac *AttendanceController) ClockIn(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	uid := userID.(uint)

	var request dto.ClockRequest
	if err := c.ShouldBind(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	file, err := c.FormFile("selfie")
	if err != nil {
		response.BadRequest(c, "Thiếu ảnh selfie")
		return
	}

	selfieURL, err := uploadSelfie(file)
	if err != nil {
		log.Printf("Lỗi upload selfie: %v", err)
		response.ServerError(c)
		return
	}

	now := jakartaNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var attendance models.Attendance
	result := config.DB.Where("user_id = ? AND date = ?", uid, today.Format("2006-01-02")).First(&attendance)

	if result.Error == nil && attendance.ClockIn != nil {
		response.BadRequest(c, "Hôm nay đã chấm công vào ca rồi")
		return
	}
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	status := models.AttendanceStatusHadir
	if services.IsLate(now) {
		status = models.AttendanceStatusTerlambat
	}

	attendance.UserID = uid
	attendance.Date = today
	attendance.ClockIn = &now
	attendance.Status = status
	attendance.LatitudeIn = &request.Latitude
	attendance.LongitudeIn = &request.Longitude
	attendance.SelfieInURL = &selfieURL
	attendance.DeviceModel = request.DeviceModel
	attendance.DeviceOS = request.DeviceOS
	attendance.IsMockLocation = request.IsMockLocation
	attendance.GPSAccuracy = request.GPSAccuracy

	if err := config.DB.Save(&attendance).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Cảnh báo realtime cho admin khi thiết bị báo vị trí giả
	if request.IsMockLocation != nil && *request.IsMockLocation {
		var user models.User
		if err := config.DB.First(&user, uid).Error; err == nil {
			message := notification.NewMockLocationMessageBuilder(uid, user.Name).Build()
			if err := notification.NewMelodyService(ac.m).SendMessage(message); err != nil {
				log.Printf("Lỗi gửi cảnh báo vị trí giả: %v", err)
			}
		}
	}

	response.Success(c, attendance)
}

// ClockOut chốt giờ ra ca, chuyển trạng thái sang SELESAI.
func (ac *AttendanceController) ClockOut(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	uid := userID.(uint)

	var request dto.ClockRequest
	if err := c.ShouldBind(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	now := jakartaNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var attendance models.Attendance
	if err := config.DB.Where("user_id = ? AND date = ?", uid, today.Format("2006-01-02")).First(&attendance).Error; err != nil {
		response.BadRequest(c, "Hôm nay chưa chấm công vào ca")
		return
	}

	if attendance.ClockIn == nil {
		response.BadRequest(c, "Hôm nay chưa chấm công vào ca")
		return
	}
	if attendance.ClockOut != nil {
		response.BadRequest(c, "Hôm nay đã chấm công ra ca rồi")
		return
	}

	if file, err := c.FormFile("selfie"); err == nil {
		selfieURL, err := uploadSelfie(file)
		if err != nil {
			log.Printf("Lỗi upload selfie: %v", err)
			response.ServerError(c)
			return
		}
		attendance.SelfieOutURL = &selfieURL
	}

	attendance.ClockOut = &now
	attendance.Status = models.AttendanceStatusSelesai
	attendance.LatitudeOut = &request.Latitude
	attendance.LongitudeOut = &request.Longitude

	if err := config.DB.Save(&attendance).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, attendance)
}
