package logger

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(fn func()) string {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

func TestDefaultLoggerLevels(t *testing.T) {
	l := NewDefaultLogger(InfoLevel)

	out := captureLog(func() { l.Info("đánh ALPHA cho %d nhân viên", 3) })
	if !strings.Contains(out, "[hris][INFO]") || !strings.Contains(out, "đánh ALPHA cho 3 nhân viên") {
		t.Errorf("log Info thiếu tag hoặc nội dung: %q", out)
	}

	out = captureLog(func() { l.Debug("chi tiết truy vấn") })
	if out != "" {
		t.Errorf("mức Info không được ghi Debug, nhận %q", out)
	}

	out = captureLog(func() { l.Error("lỗi transaction") })
	if !strings.Contains(out, "[hris][ERROR]") {
		t.Errorf("log Error thiếu tag: %q", out)
	}
}

func TestDefaultLoggerErrorLevelSuppressesInfo(t *testing.T) {
	l := NewDefaultLogger(ErrorLevel)

	if out := captureLog(func() { l.Info("chạy cron") }); out != "" {
		t.Errorf("mức Error không được ghi Info, nhận %q", out)
	}
	if out := captureLog(func() { l.Error("hỏng") }); out == "" {
		t.Error("mức Error vẫn phải ghi Error")
	}
}
