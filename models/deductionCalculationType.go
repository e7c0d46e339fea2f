package models

import "fmt"

// DeductionCalculationType là kiểu tính của một loại khấu trừ.
// Giá trị là chuỗi UPPER_SNAKE_CASE cố định theo hợp đồng API với
// app chấm công phía mobile, không được đổi tên.
type DeductionCalculationType string

const (
	// CalcFixedUser số tiền cố định, gán riêng cho từng user
	CalcFixedUser DeductionCalculationType = "FIXED_USER"
	// CalcPercentageUser phần trăm lương cơ bản, gán riêng cho từng user
	CalcPercentageUser DeductionCalculationType = "PERCENTAGE_USER"
	// CalcPerLateInstance số tiền cố định trừ theo mỗi lần đi trễ
	CalcPerLateInstance DeductionCalculationType = "PER_LATE_INSTANCE"
	// CalcPerAlphaDay số tiền cố định trừ theo mỗi ngày vắng không phép
	CalcPerAlphaDay DeductionCalculationType = "PER_ALPHA_DAY"
	// CalcPercentageAlphaDay phần trăm trừ theo mỗi ngày vắng không phép
	CalcPercentageAlphaDay DeductionCalculationType = "PERCENTAGE_ALPHA_DAY"
	// CalcMandatoryPercentage phần trăm bắt buộc áp cho mọi user liên quan
	CalcMandatoryPercentage DeductionCalculationType = "MANDATORY_PERCENTAGE"
)

// AllDeductionCalculationTypes liệt kê đủ sáu kiểu tính, dùng cho dropdown và validate.
var AllDeductionCalculationTypes = []DeductionCalculationType{
	CalcFixedUser,
	CalcPercentageUser,
	CalcPerLateInstance,
	CalcPerAlphaDay,
	CalcPercentageAlphaDay,
	CalcMandatoryPercentage,
}

// UserLevelField cho biết assignment của user cần nhập field nào.
type UserLevelField int

const (
	UserFieldNone UserLevelField = iota
	UserFieldAmount
	UserFieldPercentage
)

// ParseDeductionCalculationType parse chuỗi từ request thành kiểu tính.
// Chuỗi lạ trả về error, không tự đổi về default.
func ParseDeductionCalculationType(s string) (DeductionCalculationType, error) {
	for _, t := range AllDeductionCalculationTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("kiểu tính khấu trừ không xác định: %q", s)
}

// Valid kiểm tra tag có nằm trong tập đóng sáu kiểu không.
func (t DeductionCalculationType) Valid() bool {
	_, err := ParseDeductionCalculationType(string(t))
	return err == nil
}

// RequiresRuleAmount true nếu kiểu tính cần ruleAmount khai báo ở cấp loại khấu trừ.
func (t DeductionCalculationType) RequiresRuleAmount() bool {
	return t == CalcPerLateInstance || t == CalcPerAlphaDay
}

// RequiresRulePercentage true nếu kiểu tính cần rulePercentage khai báo ở cấp loại khấu trừ.
func (t DeductionCalculationType) RequiresRulePercentage() bool {
	return t == CalcPercentageAlphaDay || t == CalcMandatoryPercentage
}

// UserLevelField trả về field cấp user mà kiểu tính yêu cầu.
// Switch phải phủ đủ sáu case; tag ngoài tập đóng là lỗi lập trình
// (schema frontend/backend lệch nhau) nên panic thay vì âm thầm coerce.
func (t DeductionCalculationType) UserLevelField() UserLevelField {
	switch t {
	case CalcFixedUser:
		return UserFieldAmount
	case CalcPercentageUser:
		return UserFieldPercentage
	case CalcPerLateInstance, CalcPerAlphaDay, CalcPercentageAlphaDay, CalcMandatoryPercentage:
		return UserFieldNone
	}
	panic(fmt.Sprintf("kiểu tính khấu trừ ngoài tập đóng: %q", string(t)))
}
