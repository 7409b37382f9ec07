package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"ada@example.com", "a.b+tag@sub.domain.io"}
	invalid := []string{"", "not-an-email", "@example.com", "user@", "user@domain"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("%q should be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("%q should be invalid", email)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short") {
		t.Error("passwords under 8 characters should be rejected")
	}
	if !IsValidPassword("longenough") {
		t.Error("8+ character passwords should be accepted")
	}
}
