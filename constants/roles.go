package constants

// Role của user, chuỗi theo hợp đồng API (SPA gửi/nhận nguyên văn).
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleYayasan    = "YAYASAN" // đại diện quỹ/hội đồng, chỉ duyệt đơn xin nghỉ
	RoleEmployee   = "EMPLOYEE"
)

// AssignableRoles là các role admin được phép gán khi tạo/sửa user
// (SUPER_ADMIN không gán qua API).
var AssignableRoles = []string{RoleAdmin, RoleYayasan, RoleEmployee}

func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
