package validators

import "testing"

func TestIsUsernameValid(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"alice", true},
		{"a.b-c_d9", true},
		{"ab", false},
		{"Alice", false},
		{"has space", false},
		{"почта", false},
		{"", false},
		{"abcdefghijklmnopqrstuvwxyz0123456789", false},
	}

	for _, tt := range tests {
		if got := IsUsernameValid(tt.username); got != tt.want {
			t.Errorf("IsUsernameValid(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	// Structurally broken addresses fail before any DNS lookup.
	for _, email := range []string{"", "no-at-sign", "trailing@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true, want false", email)
		}
	}
}
