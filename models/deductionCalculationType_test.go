package models

import "testing"

func TestParseDeductionCalculationType(t *testing.T) {
	tests := []struct {
		input   string
		want    DeductionCalculationType
		wantErr bool
	}{
		{"FIXED_USER", CalcFixedUser, false},
		{"PERCENTAGE_USER", CalcPercentageUser, false},
		{"PER_LATE_INSTANCE", CalcPerLateInstance, false},
		{"PER_ALPHA_DAY", CalcPerAlphaDay, false},
		{"PERCENTAGE_ALPHA_DAY", CalcPercentageAlphaDay, false},
		{"MANDATORY_PERCENTAGE", CalcMandatoryPercentage, false},
		{"", "", true},
		{"fixed_user", "", true},
		{"FIXED", "", true},
		{"PERCENTAGE", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDeductionCalculationType(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDeductionCalculationType(%q) muốn lỗi, nhận %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDeductionCalculationType(%q) lỗi không mong đợi: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDeductionCalculationType(%q) = %v, muốn %v", tt.input, got, tt.want)
		}
	}
}

// Mỗi kiểu tính rơi vào đúng một nhóm: rule amount, rule percentage,
// hoặc giá trị cấp user.
func TestCalculationTypeGroupsAreDisjoint(t *testing.T) {
	if len(AllDeductionCalculationTypes) != 6 {
		t.Fatalf("tập kiểu tính phải có đúng 6 phần tử, có %d", len(AllDeductionCalculationTypes))
	}

	for _, ct := range AllDeductionCalculationTypes {
		if !ct.Valid() {
			t.Errorf("%v phải hợp lệ", ct)
		}
		if ct.RequiresRuleAmount() && ct.RequiresRulePercentage() {
			t.Errorf("%v không được vừa cần ruleAmount vừa cần rulePercentage", ct)
		}

		hasRule := ct.RequiresRuleAmount() || ct.RequiresRulePercentage()
		hasUserField := ct.UserLevelField() != UserFieldNone
		if hasRule == hasUserField {
			t.Errorf("%v: rule cấp loại và field cấp user phải loại trừ lẫn nhau", ct)
		}
	}
}

func TestUserLevelField(t *testing.T) {
	tests := []struct {
		ct   DeductionCalculationType
		want UserLevelField
	}{
		{CalcFixedUser, UserFieldAmount},
		{CalcPercentageUser, UserFieldPercentage},
		{CalcPerLateInstance, UserFieldNone},
		{CalcPerAlphaDay, UserFieldNone},
		{CalcPercentageAlphaDay, UserFieldNone},
		{CalcMandatoryPercentage, UserFieldNone},
	}

	for _, tt := range tests {
		if got := tt.ct.UserLevelField(); got != tt.want {
			t.Errorf("%v.UserLevelField() = %v, muốn %v", tt.ct, got, tt.want)
		}
	}
}

func TestUserLevelFieldPanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("UserLevelField với tag lạ phải panic")
		}
	}()

	DeductionCalculationType("TAX_BRACKET").UserLevelField()
}
