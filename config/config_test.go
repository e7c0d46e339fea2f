package config

import (
	"os"
	"testing"
)

// LoadEnv là nơi duy nhất nạp file .env; thiếu file chỉ cảnh báo,
// biến môi trường có sẵn vẫn đọc được qua GetEnv.
func TestLoadEnvMissingFileKeepsProcessEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	t.Setenv("HRIS_TEST_KEY", "abc")

	LoadEnv()

	if got := GetEnv("HRIS_TEST_KEY"); got != "abc" {
		t.Errorf("GetEnv sau LoadEnv = %q, muốn %q", got, "abc")
	}
}

func TestGetEnvUnsetReturnsEmpty(t *testing.T) {
	os.Unsetenv("HRIS_KHONG_TON_TAI")
	if got := GetEnv("HRIS_KHONG_TON_TAI"); got != "" {
		t.Errorf("biến chưa set phải ra chuỗi rỗng, nhận %q", got)
	}
}
