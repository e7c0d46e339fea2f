package services

import "testing"

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Budi Santoso  ", "budi santoso"},
		{"Nguyễn Văn A", "nguyen van a"},
		{"SITI", "siti"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeInput(tt.input); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, muốn %q", tt.input, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("budi", "budi"); got != 1.0 {
		t.Errorf("chuỗi giống nhau phải ra 1.0, nhận %f", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("hai chuỗi rỗng phải ra 1.0, nhận %f", got)
	}
	// Lệch một ký tự trên 4 ký tự: khoảng cách 1, tương đồng 0.75.
	if got := calculateSimilarity("budi", "rudi"); got != 0.75 {
		t.Errorf("lệch một ký tự phải ra 0.75, nhận %f", got)
	}
	if got := calculateSimilarity("budi", "xyz"); got >= 0.5 {
		t.Errorf("chuỗi khác hẳn phải dưới 0.5, nhận %f", got)
	}
}
