package routes

import (
	"hris/constants"
	"hris/controllers"
	middlewares "hris/middleware"
	"hris/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerBindingValidations đăng ký tag validate tùy biến cho binding của gin
func registerBindingValidations() {
	if v, ok := binding.Validator.Engine().(*validatorv10.Validate); ok {
		_ = v.RegisterValidation("calctype", func(fl validatorv10.FieldLevel) bool {
			return models.DeductionCalculationType(fl.Field().String()).Valid()
		})
	}
}

func SetupRoutes(router *gin.Engine, m *melody.Melody) {
	registerBindingValidations()

	router.Use(middlewares.SessionMiddleware())

	attendanceController := controllers.NewAttendanceController(m)
	leaveController := controllers.NewLeaveController(m)

	api := router.Group("/api")

	api.POST("/login", controllers.Login)
	api.DELETE("/logout", controllers.Logout)
	api.POST("/auth/google", controllers.AuthGoogle)
	api.GET("/profile", controllers.GetProfile)

	// Nhân viên tự thao tác: chấm công và đơn xin nghỉ của chính mình
	employee := api.Group("", middlewares.AuthMiddleware())
	employee.POST("/attendance/clock-in", attendanceController.ClockIn)
	employee.POST("/attendance/clock-out", attendanceController.ClockOut)
	employee.POST("/leave-requests", controllers.CreateLeaveRequest)
	employee.GET("/leave-requests", controllers.GetMyLeaveRequests)
	employee.PUT("/leave-requests/:id/cancel", controllers.CancelLeaveRequest)

	admin := api.Group("/admin", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin))

	admin.GET("/users", controllers.GetUsers)
	admin.POST("/users", controllers.CreateUser)
	admin.GET("/users/search", controllers.SearchUsers)
	admin.GET("/users/:userId", controllers.GetUserByID)
	admin.PUT("/users/:userId", controllers.UpdateUser)
	admin.DELETE("/users/:userId", controllers.DeleteUser)

	admin.GET("/allowance-types", controllers.GetAllAllowanceTypes)
	admin.POST("/allowance-types", controllers.CreateAllowanceType)
	admin.GET("/allowance-types/:id", controllers.GetAllowanceTypeDetail)
	admin.PUT("/allowance-types/:id", controllers.UpdateAllowanceType)
	admin.DELETE("/allowance-types/:id", controllers.DeleteAllowanceType)

	admin.GET("/deduction-types", controllers.GetAllDeductionTypes)
	admin.POST("/deduction-types", controllers.CreateDeductionType)
	admin.GET("/deduction-types/:id", controllers.GetDeductionTypeDetail)
	admin.PUT("/deduction-types/:id", controllers.UpdateDeductionType)
	admin.DELETE("/deduction-types/:id", controllers.DeleteDeductionType)

	admin.GET("/users/:userId/allowances", controllers.GetUserAllowances)
	admin.POST("/users/:userId/allowances", controllers.CreateUserAllowance)
	admin.PUT("/users/:userId/allowances/:id", controllers.UpdateUserAllowance)
	admin.DELETE("/users/:userId/allowances/:id", controllers.DeleteUserAllowance)

	admin.GET("/users/:userId/deductions", controllers.GetUserDeductions)
	admin.POST("/users/:userId/deductions", controllers.CreateUserDeduction)
	admin.PUT("/users/:userId/deductions/:id", controllers.UpdateUserDeduction)
	admin.DELETE("/users/:userId/deductions/:id", controllers.DeleteUserDeduction)

	admin.GET("/attendances", controllers.GetAttendances)
	admin.POST("/attendance/status", controllers.UpdateAttendanceStatus)

	admin.GET("/leave-types", controllers.GetLeaveTypes)
	admin.POST("/leave-types", controllers.CreateLeaveType)

	// Ban yayasan duyệt đơn xin nghỉ
	yayasan := api.Group("/yayasan", middlewares.AuthMiddleware(constants.RoleYayasan, constants.RoleSuperAdmin))
	yayasan.GET("/leave-requests", controllers.GetLeaveRequests)
	yayasan.PUT("/leave-requests/:id/approve", leaveController.ApproveLeaveRequest)
	yayasan.PUT("/leave-requests/:id/reject", leaveController.RejectLeaveRequest)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
