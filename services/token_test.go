package services

import "testing"

// Token sinh ra phải đọc lại được đúng userID và role.
func TestTokenRoundTrip(t *testing.T) {
	userInfo := UserInfo{UserId: 42, Role: "ADMIN"}

	token, err := GenerateToken(userInfo, 60, true)
	if err != nil {
		t.Fatalf("không tạo được token: %v", err)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("không đọc được token: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, muốn 42", userID)
	}
	if role != "ADMIN" {
		t.Errorf("role = %q, muốn ADMIN", role)
	}
}

func TestGetUserIDFromTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b", "a.b.c.d", "!!!.@@@.###"} {
		if _, _, err := GetUserIDFromToken(tok); err == nil {
			t.Errorf("token %q phải bị từ chối", tok)
		}
	}
}
