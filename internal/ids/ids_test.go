package ids

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		prefix string
		want   bool
	}{
		{"15-char version id", "04tB00000009T2z", SubscriberPackageVersionPrefix, true},
		{"18-char version id", "04tB00000009T2zIAE", SubscriberPackageVersionPrefix, true},
		{"18-char request id", "0HfB00000004CFKKA2", InstallRequestPrefix, true},
		{"wrong prefix", "0HfB00000004CFKKA2", SubscriberPackageVersionPrefix, false},
		{"too short", "04tB0000009T2z", SubscriberPackageVersionPrefix, false},
		{"16 chars", "04tB00000009T2zI", SubscriberPackageVersionPrefix, false},
		{"too long", "04tB00000009T2zIAE0", SubscriberPackageVersionPrefix, false},
		{"non-alphanumeric", "04tB00000009T-zIAE", SubscriberPackageVersionPrefix, false},
		{"empty", "", SubscriberPackageVersionPrefix, false},
		{"prefix only", "04t", SubscriberPackageVersionPrefix, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.id, tt.prefix); got != tt.want {
				t.Errorf("Valid(%q, %q) = %v, want %v", tt.id, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	if !HasPrefix("04tB00000009T2z", SubscriberPackageVersionPrefix) {
		t.Error("expected 04t id to match the version prefix")
	}
	if HasPrefix("my-alias", SubscriberPackageVersionPrefix) {
		t.Error("expected alias to not match the version prefix")
	}
}
