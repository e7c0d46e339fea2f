package controllers

import (
	"log"
	"strconv"
	"time"

	"hris/config"
	"hris/dto"
	"hris/models"
	"hris/response"
	"hris/services"
	"hris/validator"

	"github.com/gin-gonic/gin"
)

const allowanceTypeCacheKey = "allowance_types:all"

func invalidateAllowanceTypeCache() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, allowanceTypeCacheKey)
	}
}

func GetAllAllowanceTypes(c *gin.Context) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allTypes []models.AllowanceType

	err = services.GetFromRedis(config.Ctx, rdb, allowanceTypeCacheKey, &allTypes)
	if err != nil || len(allTypes) == 0 {
		if err := config.DB.Find(&allTypes).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu vào Redis
		if err := services.SetToRedis(config.Ctx, rdb, allowanceTypeCacheKey, allTypes, 24*time.Hour); err != nil {
			log.Printf("Lỗi khi lưu danh sách loại phụ cấp vào Redis: %v", err)
		}
	}

	response.SuccessWithTotal(c, allTypes, len(allTypes))
}

func CreateAllowanceType(c *gin.Context) {
	var request dto.AllowanceTypePayload

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	allowanceType := models.AllowanceType{
		Name:        request.Name,
		Description: request.Description,
		IsFixed:     request.IsFixed,
	}

	if err := allowanceType.ValidateName(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&allowanceType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAllowanceTypeCache()

	response.Success(c, allowanceType)
}

func GetAllowanceTypeDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var allowanceType models.AllowanceType
	if err := config.DB.First(&allowanceType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, allowanceType)
}

func UpdateAllowanceType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.AllowanceTypePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var allowanceType models.AllowanceType
	if err := config.DB.First(&allowanceType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	allowanceType.Name = request.Name
	allowanceType.Description = request.Description
	allowanceType.IsFixed = request.IsFixed

	if err := allowanceType.ValidateName(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&allowanceType).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAllowanceTypeCache()

	response.Success(c, allowanceType)
}

func DeleteAllowanceType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var count int64
	if err := config.DB.Model(&models.UserAllowance{}).Where("allowance_type_id = ?", id).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.BadRequest(c, "Loại phụ cấp đang được gán cho nhân viên, không thể xóa")
		return
	}

	if err := config.DB.Delete(&models.AllowanceType{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAllowanceTypeCache()

	response.Success(c, nil)
}

func GetUserAllowances(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var allowances []models.UserAllowance
	if err := config.DB.Preload("AllowanceType").Where("user_id = ?", userID).Find(&allowances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, allowances, len(allowances))
}

func CreateUserAllowance(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UserAllowancePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var allowanceType models.AllowanceType
	if err := config.DB.First(&allowanceType, request.AllowanceTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	amount, err := validator.ValidateUserAllowance(request.Amount)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	allowance := models.UserAllowance{
		UserID:          uint(userID),
		AllowanceTypeID: request.AllowanceTypeID,
		Amount:          amount,
	}

	if err := config.DB.Create(&allowance).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("AllowanceType").First(&allowance, allowance.ID)

	response.Success(c, allowance)
}

func UpdateUserAllowance(c *gin.Context) {
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

	var request dto.UserAllowancePayload
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var allowance models.UserAllowance
	if err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&allowance).Error; err != nil {
		response.NotFound(c)
		return
	}

	amount, err := validator.ValidateUserAllowance(request.Amount)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	allowance.Amount = amount

	if err := config.DB.Save(&allowance).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("AllowanceType").First(&allowance, allowance.ID)

	response.Success(c, allowance)
}

func DeleteUserAllowance(c *gin.Context) {
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

	result := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserAllowance{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}
