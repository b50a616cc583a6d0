package validation

import "testing"

func TestRequired(t *testing.T) {
	t.Parallel()

	if err := Required("name", nil); err == nil {
		t.Error("expected error for nil value")
	} else if err.Error() != `"name" is required` {
		t.Errorf("unexpected message: %q", err.Error())
	}

	v := ""
	if err := Required("name", &v); err != nil {
		t.Errorf("present empty string must pass Required, got %v", err)
	}
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	if err := NotEmpty("email", ""); err == nil {
		t.Error("expected error for empty value")
	} else if err.Error() != `"email" is not allowed to be empty` {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err := NotEmpty("email", "x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	if err := MinLen("password", "12345", 6); err == nil {
		t.Error("expected error for short value")
	} else if err.Error() != `"password" length must be at least 6 characters long` {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err := MinLen("password", "123456", 6); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	if err := MaxLen("name", "abcd", 3); err == nil {
		t.Error("expected error for long value")
	} else if err.Error() != `"name" length must be less than or equal to 3 characters long` {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err := MaxLen("name", "abc", 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"user@example.com", true},
		{"user+tag@example.co.jp", true},
		{"user@localhost", false},
		{"user example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
		{"user@@example.com", false},
	}

	for _, tt := range tests {
		err := Email("email", tt.value)
		if tt.valid && err != nil {
			t.Errorf("expected %q to be valid, got %v", tt.value, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("expected %q to be invalid", tt.value)
		}
	}
}
