package validator

import (
	"testing"

	"hris/errors"
	"hris/models"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidateDeductionType(t *testing.T) {
	tests := []struct {
		name     string
		dt       models.DeductionType
		wantCode errors.ErrorCode
	}{
		{
			name: "FIXED_USER hợp lệ",
			dt:   models.DeductionType{Name: "Potongan Koperasi", CalculationType: models.CalcFixedUser},
		},
		{
			name:     "tên trống",
			dt:       models.DeductionType{Name: "  ", CalculationType: models.CalcFixedUser},
			wantCode: errors.ErrCodeRequiredField,
		},
		{
			name:     "kiểu tính lạ",
			dt:       models.DeductionType{Name: "X", CalculationType: "SOMETHING_ELSE"},
			wantCode: errors.ErrCodeUnknownCalculationType,
		},
		{
			name: "PER_LATE_INSTANCE thiếu ruleAmount",
			dt: models.DeductionType{
				Name:            "Denda Terlambat",
				CalculationType: models.CalcPerLateInstance,
			},
			wantCode: errors.ErrCodeMissingOrInvalidAmount,
		},
		{
			name: "PER_LATE_INSTANCE có ruleAmount",
			dt: models.DeductionType{
				Name:            "Denda Terlambat",
				CalculationType: models.CalcPerLateInstance,
				RuleAmount:      decPtr("25000"),
			},
		},
		{
			name: "PER_LATE_INSTANCE thừa rulePercentage",
			dt: models.DeductionType{
				Name:            "Denda Terlambat",
				CalculationType: models.CalcPerLateInstance,
				RuleAmount:      decPtr("25000"),
				RulePercentage:  decPtr("5"),
			},
			wantCode: errors.ErrCodeMissingOrInvalidPercentage,
		},
		{
			name: "PER_ALPHA_DAY ruleAmount âm",
			dt: models.DeductionType{
				Name:            "Potongan Alpha",
				CalculationType: models.CalcPerAlphaDay,
				RuleAmount:      decPtr("-1"),
			},
			wantCode: errors.ErrCodeMissingOrInvalidAmount,
		},
		{
			name: "MANDATORY_PERCENTAGE thiếu rulePercentage",
			dt: models.DeductionType{
				Name:            "BPJS",
				CalculationType: models.CalcMandatoryPercentage,
				IsMandatory:     true,
			},
			wantCode: errors.ErrCodeMissingOrInvalidPercentage,
		},
		{
			name: "MANDATORY_PERCENTAGE quá 100",
			dt: models.DeductionType{
				Name:            "BPJS",
				CalculationType: models.CalcMandatoryPercentage,
				RulePercentage:  decPtr("101"),
			},
			wantCode: errors.ErrCodeMissingOrInvalidPercentage,
		},
		{
			name: "PERCENTAGE_ALPHA_DAY thừa ruleAmount",
			dt: models.DeductionType{
				Name:            "Potongan Alpha",
				CalculationType: models.CalcPercentageAlphaDay,
				RulePercentage:  decPtr("3.5"),
				RuleAmount:      decPtr("1000"),
			},
			wantCode: errors.ErrCodeMissingOrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeductionType(&tt.dt)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("lỗi không mong đợi: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tt.wantCode) {
				t.Fatalf("muốn mã %s, nhận %v", tt.wantCode, err)
			}
		})
	}
}

// Với hai kiểu gán theo user, rule cấp loại gửi kèm bị ép về null thay vì báo lỗi.
func TestValidateDeductionTypeNullsUserLevelRules(t *testing.T) {
	dt := models.DeductionType{
		Name:            "Potongan Koperasi",
		CalculationType: models.CalcPercentageUser,
		RuleAmount:      decPtr("150000"),
		RulePercentage:  decPtr("50"),
	}

	if err := ValidateDeductionType(&dt); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if dt.RuleAmount != nil || dt.RulePercentage != nil {
		t.Fatalf("rule cấp loại phải bị ép về null, nhận amount=%v percentage=%v", dt.RuleAmount, dt.RulePercentage)
	}
}

func TestNormalizeUserDeduction(t *testing.T) {
	tests := []struct {
		name           string
		calcType       models.DeductionCalculationType
		amount         *string
		percentage     *string
		wantAmount     string // "" nghĩa là nil
		wantPercentage string
		wantCode       errors.ErrorCode
	}{
		{
			name:       "FIXED_USER amount hợp lệ",
			calcType:   models.CalcFixedUser,
			amount:     strPtr("150000"),
			wantAmount: "150000",
		},
		{
			name:     "FIXED_USER thiếu amount",
			calcType: models.CalcFixedUser,
			wantCode: errors.ErrCodeMissingOrInvalidAmount,
		},
		{
			name:       "FIXED_USER amount rỗng có percentage",
			calcType:   models.CalcFixedUser,
			amount:     strPtr(""),
			percentage: strPtr("50"),
			wantCode:   errors.ErrCodeMissingOrInvalidAmount,
		},
		{
			name:     "FIXED_USER amount âm",
			calcType: models.CalcFixedUser,
			amount:   strPtr("-100"),
			wantCode: errors.ErrCodeMissingOrInvalidAmount,
		},
		{
			name:           "PERCENTAGE_USER percentage hợp lệ",
			calcType:       models.CalcPercentageUser,
			percentage:     strPtr("2.5"),
			wantPercentage: "2.5",
		},
		{
			name:       "PERCENTAGE_USER quá 100",
			calcType:   models.CalcPercentageUser,
			percentage: strPtr("150"),
			wantCode:   errors.ErrCodeMissingOrInvalidPercentage,
		},
		{
			name:       "PERCENTAGE_USER âm",
			calcType:   models.CalcPercentageUser,
			percentage: strPtr("-5"),
			wantCode:   errors.ErrCodeMissingOrInvalidPercentage,
		},
		{
			name:     "PERCENTAGE_USER thiếu percentage",
			calcType: models.CalcPercentageUser,
			amount:   strPtr("150000"),
			wantCode: errors.ErrCodeMissingOrInvalidPercentage,
		},
		{
			name:       "MANDATORY_PERCENTAGE bỏ qua input của client",
			calcType:   models.CalcMandatoryPercentage,
			amount:     strPtr("150000"),
			percentage: strPtr("50"),
		},
		{
			name:     "PERCENTAGE_ALPHA_DAY bỏ qua amount",
			calcType: models.CalcPercentageAlphaDay,
			amount:   strPtr("1000"),
		},
		{
			name:     "PER_LATE_INSTANCE không cần gì",
			calcType: models.CalcPerLateInstance,
		},
		{
			name:     "PER_ALPHA_DAY không cần gì",
			calcType: models.CalcPerAlphaDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := models.DeductionType{Name: "X", CalculationType: tt.calcType}
			amount, percentage, err := NormalizeUserDeduction(dt, tt.amount, tt.percentage)

			if tt.wantCode != "" {
				if !errors.HasCode(err, tt.wantCode) {
					t.Fatalf("muốn mã %s, nhận %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("lỗi không mong đợi: %v", err)
			}

			if amount != nil && percentage != nil {
				t.Fatal("amount và percentage không bao giờ được cùng khác nil")
			}

			if tt.wantAmount == "" {
				if amount != nil {
					t.Errorf("muốn amount nil, nhận %v", amount)
				}
			} else if amount == nil || !amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
				t.Errorf("muốn amount %s, nhận %v", tt.wantAmount, amount)
			}

			if tt.wantPercentage == "" {
				if percentage != nil {
					t.Errorf("muốn percentage nil, nhận %v", percentage)
				}
			} else if percentage == nil || !percentage.Equal(decimal.RequireFromString(tt.wantPercentage)) {
				t.Errorf("muốn percentage %s, nhận %v", tt.wantPercentage, percentage)
			}
		})
	}
}

func TestNormalizeUserDeductionUnknownType(t *testing.T) {
	dt := models.DeductionType{Name: "X", CalculationType: "LEGACY_TYPE"}
	_, _, err := NormalizeUserDeduction(dt, strPtr("100"), nil)
	if !errors.HasCode(err, errors.ErrCodeUnknownCalculationType) {
		t.Fatalf("muốn mã %s, nhận %v", errors.ErrCodeUnknownCalculationType, err)
	}
}

// Chuẩn hóa hai lần cho cùng kết quả: kết quả lần một đưa lại làm input
// không đổi gì.
func TestNormalizeUserDeductionIdempotent(t *testing.T) {
	dt := models.DeductionType{Name: "X", CalculationType: models.CalcFixedUser}

	amount1, _, err := NormalizeUserDeduction(dt, strPtr("150000.50"), nil)
	if err != nil {
		t.Fatal(err)
	}

	s := amount1.String()
	amount2, _, err := NormalizeUserDeduction(dt, &s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !amount1.Equal(*amount2) {
		t.Fatalf("chuẩn hóa lần hai ra %v, muốn %v", amount2, amount1)
	}
}

func TestValidateUserAllowance(t *testing.T) {
	if _, err := ValidateUserAllowance("500000"); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if _, err := ValidateUserAllowance("-1"); err == nil {
		t.Fatal("amount âm phải bị từ chối")
	}
	if _, err := ValidateUserAllowance(""); err == nil {
		t.Fatal("amount rỗng phải bị từ chối")
	}
	if _, err := ValidateUserAllowance("abc"); err == nil {
		t.Fatal("amount không phải số phải bị từ chối")
	}
}

func TestParseAPIDate(t *testing.T) {
	if _, err := ParseAPIDate("2026-01-31"); err != nil {
		t.Fatalf("lỗi không mong đợi: %v", err)
	}
	if _, err := ParseAPIDate("31/01/2026"); err == nil {
		t.Fatal("định dạng sai phải bị từ chối")
	}
}
