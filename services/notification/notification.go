package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// LeaveMessageBuilder dựng thông báo khi đơn nghỉ phép được duyệt/từ chối
type LeaveMessageBuilder struct {
	requestID uint
	userName  string
	status    string
}

func NewLeaveMessageBuilder(requestID uint, userName string, status string) *LeaveMessageBuilder {
	return &LeaveMessageBuilder{
		requestID: requestID,
		userName:  userName,
		status:    status,
	}
}

func (b *LeaveMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đơn nghỉ phép #%d của %s đã chuyển sang trạng thái %s.", b.requestID, b.userName, b.status)
}

// MockLocationMessageBuilder dựng cảnh báo khi phát hiện vị trí giả lúc chấm công
type MockLocationMessageBuilder struct {
	userID uint
	name   string
}

func NewMockLocationMessageBuilder(userID uint, name string) *MockLocationMessageBuilder {
	return &MockLocationMessageBuilder{userID: userID, name: name}
}

func (b *MockLocationMessageBuilder) Build() string {
	return fmt.Sprintf("⚠️ Phát hiện vị trí giả khi chấm công: user %d (%s).", b.userID, b.name)
}
