package validator

import (
	"regexp"
	"strings"
	"time"

	"hris/errors"
	"hris/models"

	"github.com/shopspring/decimal"
)

var percentMax = decimal.NewFromInt(100)

// parseNonNegativeAmount parse chuỗi tiền tệ thành decimal không âm.
// Dùng decimal thay vì float để không lệch số khi tính lương.
func parseNonNegativeAmount(s string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errors.ErrMissingRequired
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, errors.ErrInvalidInput
	}
	return &d, nil
}

// parsePercentage parse chuỗi phần trăm thành decimal trong [0, 100].
// Không giới hạn số chữ số thập phân (form cho phép step="any").
func parsePercentage(s string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errors.ErrMissingRequired
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() || d.GreaterThan(percentMax) {
		return nil, errors.ErrInvalidInput
	}
	return &d, nil
}

// ValidateDeductionType validate và chuẩn hóa rule cấp loại khấu trừ trước khi lưu.
// ruleAmount chỉ có với kiểu cần rule amount, rulePercentage chỉ có với kiểu cần
// rule percentage; hai kiểu gán theo user thì cả hai bị ép về null (giá trị nằm
// trên assignment, không nằm trên loại).
func ValidateDeductionType(dt *models.DeductionType) error {
	if strings.TrimSpace(dt.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại khấu trừ không được để trống", nil)
	}

	if !dt.CalculationType.Valid() {
		return errors.NewAppError(errors.ErrCodeUnknownCalculationType,
			"Kiểu tính khấu trừ không hợp lệ: "+string(dt.CalculationType), nil)
	}

	switch {
	case dt.CalculationType.RequiresRuleAmount():
		if dt.RuleAmount == nil || dt.RuleAmount.IsNegative() {
			return errors.NewAppError(errors.ErrCodeMissingOrInvalidAmount,
				"ruleAmount bắt buộc và không âm cho kiểu tính "+string(dt.CalculationType), nil)
		}
		if dt.RulePercentage != nil {
			return errors.NewAppError(errors.ErrCodeMissingOrInvalidPercentage,
				"rulePercentage không áp dụng cho kiểu tính "+string(dt.CalculationType), nil)
		}
	case dt.CalculationType.RequiresRulePercentage():
		if dt.RulePercentage == nil || dt.RulePercentage.IsNegative() || dt.RulePercentage.GreaterThan(percentMax) {
			return errors.NewAppError(errors.ErrCodeMissingOrInvalidPercentage,
				"rulePercentage bắt buộc trong [0, 100] cho kiểu tính "+string(dt.CalculationType), nil)
		}
		if dt.RuleAmount != nil {
			return errors.NewAppError(errors.ErrCodeMissingOrInvalidAmount,
				"ruleAmount không áp dụng cho kiểu tính "+string(dt.CalculationType), nil)
		}
	default:
		// FIXED_USER / PERCENTAGE_USER: giá trị nằm trên assignment
		dt.RuleAmount = nil
		dt.RulePercentage = nil
	}

	return nil
}

// NormalizeUserDeduction validate và chuẩn hóa assignment của user theo loại khấu trừ.
// Trả về cặp (amount, percentage) đã chuẩn hóa, không bao giờ cả hai cùng khác nil.
// Với bốn kiểu tính theo rule, field client gửi lên bị bỏ qua chứ không báo lỗi
// (form không hiển thị các field đó nhưng payload cũ có thể còn sót).
func NormalizeUserDeduction(dt models.DeductionType, amountStr, percentageStr *string) (*decimal.Decimal, *decimal.Decimal, error) {
	if !dt.CalculationType.Valid() {
		return nil, nil, errors.NewAppError(errors.ErrCodeUnknownCalculationType,
			"Kiểu tính khấu trừ không hợp lệ: "+string(dt.CalculationType), nil)
	}

	switch dt.CalculationType.UserLevelField() {
	case models.UserFieldAmount:
		if amountStr == nil {
			return nil, nil, errors.NewAppError(errors.ErrCodeMissingOrInvalidAmount,
				"assignedAmount bắt buộc cho kiểu tính "+string(dt.CalculationType), nil)
		}
		amount, err := parseNonNegativeAmount(*amountStr)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrCodeMissingOrInvalidAmount,
				"assignedAmount phải là số không âm", err)
		}
		return amount, nil, nil

	case models.UserFieldPercentage:
		if percentageStr == nil {
			return nil, nil, errors.NewAppError(errors.ErrCodeMissingOrInvalidPercentage,
				"assignedPercentage bắt buộc cho kiểu tính "+string(dt.CalculationType), nil)
		}
		percentage, err := parsePercentage(*percentageStr)
		if err != nil {
			return nil, nil, errors.NewAppError(errors.ErrCodeMissingOrInvalidPercentage,
				"assignedPercentage phải nằm trong khoảng từ 0 đến 100", err)
		}
		return nil, percentage, nil
	}

	// Kiểu tính theo rule: không có giá trị cấp user
	return nil, nil, nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.BaseSalary != nil && user.BaseSalary.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Lương cơ bản không được âm", nil)
	}

	for _, d := range user.WorkDays {
		if d < 0 || d > 6 {
			return errors.NewAppError(errors.ErrCodeValidation, "Ngày làm việc phải từ 0 (CN) đến 6 (Thứ 7)", nil)
		}
	}

	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// ValidateUserAllowance validate amount của phụ cấp gán cho user.
// Không rẽ nhánh theo kiểu như khấu trừ: amount luôn bắt buộc.
func ValidateUserAllowance(amountStr string) (decimal.Decimal, error) {
	amount, err := parseNonNegativeAmount(amountStr)
	if err != nil {
		return decimal.Decimal{}, errors.NewAppError(errors.ErrCodeInvalidAmount,
			"Số tiền phụ cấp phải là số không âm", err)
	}
	return *amount, nil
}

// ValidateLeaveRequest validate đơn xin nghỉ trước khi tạo.
func ValidateLeaveRequest(lr *models.LeaveRequest) error {
	if lr.LeaveTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại nghỉ phép không được để trống", nil)
	}

	if lr.StartDate.IsZero() || lr.EndDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày bắt đầu và kết thúc không được để trống", nil)
	}

	if lr.EndDate.Before(lr.StartDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu", nil)
	}

	if strings.TrimSpace(lr.Reason) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Lý do xin nghỉ không được để trống", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ParseAPIDate parse ngày dạng YYYY-MM-DD từ query/body.
func ParseAPIDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD", err)
	}
	return t, nil
}
