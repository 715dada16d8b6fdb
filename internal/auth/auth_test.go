package auth

import (
	"errors"
	"testing"
)

func TestGateVerify(t *testing.T) {
	gate := NewGate("admin123")

	if err := gate.Verify("admin123"); err != nil {
		t.Errorf("Verify() err = %v при верном пароле", err)
	}

	for _, password := range []string{"", "admin", "ADMIN123", "admin1234"} {
		if err := gate.Verify(password); !errors.Is(err, ErrWrongPassword) {
			t.Errorf("Verify(%q) err = %v, ожидался ErrWrongPassword", password, err)
		}
	}
}
