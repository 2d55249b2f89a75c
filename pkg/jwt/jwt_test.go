package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	m, err := New("secret", time.Hour, "productivity-calendar")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, exp, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("expiry %v is not in the future", exp)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
}

func TestVerifyRejects(t *testing.T) {
	m, _ := New("secret", time.Hour, "")
	other, _ := New("other", time.Hour, "")
	foreign, _, _ := other.Generate("u1")

	expiredMgr := &implManager{secret: []byte("secret"), ttl: time.Minute, now: func() time.Time { return time.Now().Add(-time.Hour) }}
	expired, _, _ := expiredMgr.Generate("u1")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New("", time.Hour, ""); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("err = %v", err)
	}
}
