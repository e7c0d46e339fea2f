package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"hris/config"
	"hris/constants"
	"hris/dto"
	"hris/models"
	"hris/response"
	"hris/services"
	"hris/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const userCacheKey = "users:all"

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		BaseSalary: user.BaseSalary,
		WorkDays:   user.WorkDays,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func invalidateUserCache() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteFromRedis(config.Ctx, rdb, userCacheKey)
	}
}

// Lọc user theo role và name
func filterUsers(users []models.User, roleFilter, nameFilter string) []dto.UserResponse {
	filtered := make([]dto.UserResponse, 0)
	for _, u := range users {
		if roleFilter != "" && u.Role != roleFilter {
			continue
		}

		if nameFilter != "" {
			decodedNameFilter, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(u.Name), strings.ToLower(decodedNameFilter)) {
				continue
			}
		}

		filtered = append(filtered, toUserResponse(u))
	}
	return filtered
}

func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var allUsers []models.User

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	err = services.GetFromRedis(config.Ctx, rdb, userCacheKey, &allUsers)
	if err != nil || len(allUsers) == 0 {
		if err := config.DB.Find(&allUsers).Error; err != nil {
			response.ServerError(c)
			return
		}

		// Lưu vào Redis
		if err := services.SetToRedis(config.Ctx, rdb, userCacheKey, allUsers, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách user vào Redis: %v", err)
		}
	}

	filtered := filterUsers(allUsers, c.Query("role"), c.Query("name"))

	switch c.DefaultQuery("sort", "createdAt") {
	case "name":
		sort.Slice(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case "email":
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Email < filtered[j].Email
		})
	default:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start >= total {
		filtered = []dto.UserResponse{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	response.SuccessWithPagination(c, filtered, page, limit, total)
}

func GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Preload("Allowances.AllowanceType").Preload("Deductions.DeductionType").First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, user)
}

func CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !constants.IsAssignableRole(request.Role) {
		response.BadRequest(c, "Role không hợp lệ: "+request.Role)
		return
	}

	if err := validator.ValidatePassword(request.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var baseSalary *decimal.Decimal
	if request.BaseSalary != nil && strings.TrimSpace(*request.BaseSalary) != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(*request.BaseSalary))
		if err != nil {
			response.BadRequest(c, "Lương cơ bản không hợp lệ")
			return
		}
		baseSalary = &d
	}

	user := models.User{
		Name:       request.Name,
		Email:      strings.ToLower(request.Email),
		Password:   request.Password,
		Role:       request.Role,
		BaseSalary: baseSalary,
		WorkDays:   pq.Int64Array(request.WorkDays),
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := services.CreateUser(user)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invalidateUserCache()

	response.Success(c, toUserResponse(created))
}

func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Email != "" {
		user.Email = strings.ToLower(request.Email)
	}
	if request.Role != "" {
		if !constants.IsAssignableRole(request.Role) {
			response.BadRequest(c, "Role không hợp lệ: "+request.Role)
			return
		}
		user.Role = request.Role
	}
	if request.BaseSalary != nil {
		if strings.TrimSpace(*request.BaseSalary) == "" {
			user.BaseSalary = nil
		} else {
			d, err := decimal.NewFromString(strings.TrimSpace(*request.BaseSalary))
			if err != nil {
				response.BadRequest(c, "Lương cơ bản không hợp lệ")
				return
			}
			user.BaseSalary = &d
		}
	}
	if request.WorkDays != nil {
		user.WorkDays = pq.Int64Array(request.WorkDays)
	}
	if request.Password != nil {
		if err := validator.ValidatePassword(*request.Password); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		hashed, err := services.HashPassword(*request.Password)
		if err != nil {
			response.ServerError(c)
			return
		}
		user.Password = hashed
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateUserCache()

	response.Success(c, toUserResponse(user))
}

func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateUserCache()

	response.Success(c, nil)
}

// SearchUsers tìm user theo tên gần đúng (chịu được gõ thiếu dấu, sai chính tả)
func SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results, err := services.SearchUsersByName(query, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, results, len(results))
}
