package controllers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"hris/config"
	"hris/dto"
	apperrors "hris/errors"
	"hris/models"
	"hris/response"
	"hris/services"
	"hris/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const deductionTypeCacheKey = "deduction_types:all"

func invalidateDeductionTypeCache() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, deductionTypeCacheKey)
	}
}

// respondAppError trả lỗi nghiệp vụ kèm mã để SPA hiển thị theo field
func respondAppError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		response.ErrorWithCode(c, string(appErr.Code), appErr.Message)
		return
	}
	response.BadRequest(c, err.Error())
}

// parseRuleDecimal parse chuỗi decimal từ payload, chuỗi rỗng coi như null
func parseRuleDecimal(s *string, code apperrors.ErrorCode, field string) (*decimal.Decimal, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil, apperrors.NewAppError(code, field+" phải là chuỗi số hợp lệ", err)
	}
	return &d, nil
}

func deductionTypeFromPayload(request dto.DeductionTypePayload) (models.DeductionType, error) {
	ruleAmount, err := parseRuleDecimal(request.RuleAmount, apperrors.ErrCodeMissingOrInvalidAmount, "ruleAmount")
	if err != nil {
		return models.DeductionType{}, err
	}
	rulePercentage, err := parseRuleDecimal(request.RulePercentage, apperrors.ErrCodeMissingOrInvalidPercentage, "rulePercentage")
	if err != nil {
		return models.DeductionType{}, err
	}

	return models.DeductionType{
		Name:            request.Name,
		Description:     request.Description,
		CalculationType: models.DeductionCalculationType(request.CalculationType),
		RuleAmount:      ruleAmount,
		RulePercentage:  rulePercentage,
		IsMandatory:     request.IsMandatory,
	}, nil
}

func GetAllDeductionTypes(c *gin.Context) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allTypes []models.DeductionType

	err = services.GetFromRedis(config.Ctx, rdb, deductionTypeCacheKey, &allTypes)
	if err != nil || len(allTypes) == 0 {
		if err := config.DB.Find(&allTypes).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu vào Redis
		if err := services.SetToRedis(config.Ctx, rdb, deductionTypeCacheKey, allTypes, 24*time.Hour); err != nil {
			log.Printf("Lỗi khi lưu danh sách loại khấu trừ vào Redis: %v", err)
		}
	}

	response.SuccessWithTotal(c, allTypes, len(allTypes))
}

func CreateDeductionType(c *gin.Context) {
	var request dto.DeductionTypePayload

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	deductionType, err := deductionTypeFromPayload(request)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if err := validator.ValidateDeductionType(&deductionType); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Create(&deductionType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDeductionTypeCache()

	response.Success(c, deductionType)
}

func GetDeductionTypeDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var deductionType models.DeductionType
	if err := config.DB.First(&deductionType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, deductionType)
}

func UpdateDeductionType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.DeductionTypePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.DeductionType
	if err := config.DB.First(&existing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	updated, err := deductionTypeFromPayload(request)
	if err != nil {
		respondAppError(c, err)
		return
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.CalculationType = updated.CalculationType
	existing.RuleAmount = updated.RuleAmount
	existing.RulePercentage = updated.RulePercentage
	existing.IsMandatory = updated.IsMandatory

	if err := validator.ValidateDeductionType(&existing); err != nil {
		respondAppError(c, err)
		return
	}

	if err := config.DB.Save(&existing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDeductionTypeCache()

	response.Success(c, existing)
}

func DeleteDeductionType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var count int64
	if err := config.DB.Model(&models.UserDeduction{}).Where("deduction_type_id = ?", id).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.BadRequest(c, "Loại khấu trừ đang được gán cho nhân viên, không thể xóa")
		return
	}

	if err := config.DB.Delete(&models.DeductionType{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDeductionTypeCache()

	response.Success(c, nil)
}

func GetUserDeductions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var deductions []models.UserDeduction
	if err := config.DB.Preload("DeductionType").Where("user_id = ?", userID).Find(&deductions).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, deductions, len(deductions))
}

func CreateUserDeduction(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UserDeductionPayload
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var deductionType models.DeductionType
	if err := config.DB.First(&deductionType, request.DeductionTypeID).Error; err != nil {
		response.ErrorWithCode(c, string(apperrors.ErrCodeDeductionTypeNotFound),
			"Không tìm thấy loại khấu trừ")
		return
	}

	amount, percentage, err := validator.NormalizeUserDeduction(deductionType, request.AssignedAmount, request.AssignedPercentage)
	if err != nil {
		respondAppError(c, err)
		return
	}

	deduction := models.UserDeduction{
		UserID:             uint(userID),
		DeductionTypeID:    request.DeductionTypeID,
		AssignedAmount:     amount,
		AssignedPercentage: percentage,
	}

	if err := config.DB.Create(&deduction).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("DeductionType").First(&deduction, deduction.ID)

	response.Success(c, deduction)
}

func UpdateUserDeduction(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UserDeductionPayload
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var deduction models.UserDeduction
	if err := config.DB.Preload("DeductionType").Where("id = ? AND user_id = ?", id, userID).First(&deduction).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Loại khấu trừ khóa cứng sau khi gán, muốn đổi loại thì xóa và gán lại
	if request.DeductionTypeID != 0 && request.DeductionTypeID != deduction.DeductionTypeID {
		response.ErrorWithCode(c, string(apperrors.ErrCodeDeductionTypeLocked),
			"Không thể đổi loại khấu trừ của một assignment đã tồn tại")
		return
	}

	amount, percentage, err := validator.NormalizeUserDeduction(deduction.DeductionType, request.AssignedAmount, request.AssignedPercentage)
	if err != nil {
		respondAppError(c, err)
		return
	}

	deduction.AssignedAmount = amount
	deduction.AssignedPercentage = percentage

	if err := config.DB.Save(&deduction).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("DeductionType").First(&deduction, deduction.ID)

	response.Success(c, deduction)
}

func DeleteUserDeduction(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var deduction models.UserDeduction
	if err := config.DB.Preload("DeductionType").Where("id = ? AND user_id = ?", id, userID).First(&deduction).Error; err != nil {
		response.NotFound(c)
		return
	}

	if deduction.DeductionType.IsMandatory {
		response.BadRequest(c, "Không thể gỡ khấu trừ bắt buộc khỏi nhân viên")
		return
	}

	if err := config.DB.Delete(&deduction).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
