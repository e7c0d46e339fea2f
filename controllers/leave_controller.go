package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"hris/config"
	"hris/dto"
	apperrors "hris/errors"
	"hris/models"
	"hris/response"
	"hris/services/notification"
	"hris/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

type LeaveController struct {
	m *melody.Melody
}

func NewLeaveController(m *melody.Melody) *LeaveController {
	return &LeaveController{m: m}
}

func GetLeaveTypes(c *gin.Context) {
	var leaveTypes []models.LeaveType
	if err := config.DB.Find(&leaveTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, leaveTypes, len(leaveTypes))
}

func CreateLeaveType(c *gin.Context) {
	var request dto.LeaveTypePayload

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	leaveType := models.LeaveType{
		Name:                request.Name,
		DeductsLeaveBalance: request.DeductsLeaveBalance,
	}

	if err := config.DB.Create(&leaveType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, leaveType)
}

// GetLeaveRequests liệt kê đơn xin nghỉ cho ban duyệt, lọc được theo trạng thái.
func GetLeaveRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := config.DB.Model(&models.LeaveRequest{}).Preload("User").Preload("LeaveType")

	if status := c.Query("status"); status != "" {
		switch status {
		case models.LeaveStatusPendingApproval, models.LeaveStatusApproved,
			models.LeaveStatusRejected, models.LeaveStatusCancelled:
			query = query.Where("status = ?", status)
		default:
			response.ErrorWithCode(c, string(apperrors.ErrCodeInvalidLeaveStatus),
				"Trạng thái đơn xin nghỉ không hợp lệ: "+status)
			return
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var requests []models.LeaveRequest
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, requests, page, limit, int(total))
}

// createCutiAttendances ghi trạng thái CUTI cho từng ngày nghỉ đã duyệt
// rơi vào lịch làm việc của nhân viên, bỏ qua ngày đã có bản ghi.
func createCutiAttendances(tx *gorm.DB, lr models.LeaveRequest) error {
	var user models.User
	if err := tx.First(&user, lr.UserID).Error; err != nil {
		return err
	}

	for d := lr.StartDate; !d.After(lr.EndDate); d = d.AddDate(0, 0, 1) {
		if !user.WorksOn(d.Weekday()) {
			continue
		}

		var existing models.Attendance
		err := tx.Where("user_id = ? AND date = ?", lr.UserID, d.Format("2006-01-02")).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := models.Attendance{
			UserID: lr.UserID,
			Date:   d,
			Status: models.AttendanceStatusCuti,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (lc *LeaveController) broadcastLeaveUpdate(lr models.LeaveRequest) {
	message := notification.NewLeaveMessageBuilder(lr.ID, lr.User.Name, lr.Status).Build()
	if err := notification.NewMelodyService(lc.m).SendMessage(message); err != nil {
		log.Printf("Lỗi gửi thông báo đơn xin nghỉ: %v", err)
	}
}

// ApproveLeaveRequest duyệt đơn; nếu loại nghỉ trừ phép năm thì đồng thời
// ghi CUTI lên bảng chấm công cho các ngày nghỉ.
func (lc *LeaveController) ApproveLeaveRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	adminID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var lr models.LeaveRequest
	if err := config.DB.Preload("User").Preload("LeaveType").First(&lr, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := lr.Approve(adminID.(uint), time.Now()); err != nil {
		response.ErrorWithCode(c, string(apperrors.ErrCodeInvalidLeaveStatus), err.Error())
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		response.ServerError(c)
		return
	}

	if err := tx.Save(&lr).Error; err != nil {
		tx.Rollback()
		response.ServerError(c)
		return
	}

	if lr.LeaveType.DeductsLeaveBalance {
		if err := createCutiAttendances(tx, lr); err != nil {
			tx.Rollback()
			response.ServerError(c)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		response.ServerError(c)
		return
	}

	lc.broadcastLeaveUpdate(lr)

	response.Success(c, lr)
}

func (lc *LeaveController) RejectLeaveRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	adminID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var request dto.RejectLeaveRequestInput
	if err := c.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var lr models.LeaveRequest
	if err := config.DB.Preload("User").Preload("LeaveType").First(&lr, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := lr.Reject(adminID.(uint), time.Now(), request.RejectionReason); err != nil {
		response.ErrorWithCode(c, string(apperrors.ErrCodeInvalidLeaveStatus), err.Error())
		return
	}

	if err := config.DB.Save(&lr).Error; err != nil {
		response.ServerError(c)
		return
	}

	lc.broadcastLeaveUpdate(lr)

	response.Success(c, lr)
}

// CreateLeaveRequest cho nhân viên tự nộp đơn xin nghỉ.
func CreateLeaveRequest(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateLeaveRequestInput
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	startDate, err := validator.ParseAPIDate(request.StartDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ, cần YYYY-MM-DD")
		return
	}
	endDate, err := validator.ParseAPIDate(request.EndDate)
	if err != nil {
		response.BadRequest(c, "Ngày kết thúc không hợp lệ, cần YYYY-MM-DD")
		return
	}

	var leaveType models.LeaveType
	if err := config.DB.First(&leaveType, request.LeaveTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	lr := models.LeaveRequest{
		UserID:      userID.(uint),
		LeaveTypeID: request.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      request.Reason,
		Status:      models.LeaveStatusPendingApproval,
	}

	if err := validator.ValidateLeaveRequest(&lr); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&lr).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("LeaveType").First(&lr, lr.ID)

	response.Success(c, lr)
}

// GetMyLeaveRequests trả về các đơn của chính nhân viên đang đăng nhập.
func GetMyLeaveRequests(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var requests []models.LeaveRequest
	if err := config.DB.Preload("LeaveType").
		Where("user_id = ?", userID.(uint)).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, requests, len(requests))
}

// CancelLeaveRequest cho nhân viên hủy đơn của mình khi còn chờ duyệt.
func CancelLeaveRequest(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var lr models.LeaveRequest
	if err := config.DB.Preload("LeaveType").First(&lr, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := lr.Cancel(userID.(uint)); err != nil {
		response.ErrorWithCode(c, string(apperrors.ErrCodeInvalidLeaveStatus), err.Error())
		return
	}

	if err := config.DB.Save(&lr).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, lr)
}
