package version

import "testing"

func TestStringDefaultsToDev(t *testing.T) {
	if got := String(); got == "" {
		t.Error("String() should never be empty")
	}
	if Version != "dev" {
		t.Errorf("Version = %q, want %q when not stamped by ldflags", Version, "dev")
	}
}
