package server

import "testing"

func TestNormalizeRequestPath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/index.html", "/index.html"},
		{"/a/./b", "/a/b"},
		{"/a//b", "/a/b"},
		{"/../index.html", "/index.html"},
		{"/a/../b", "/b"},
	}

	for _, tt := range tests {
		if got := normalizeRequestPath(tt.raw); got != tt.want {
			t.Errorf("normalizeRequestPath(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestValidateRequestPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/", false},
		{"/index.html", false},
		{"/sub/file.txt", false},
		{"../secret", true},
		{"..", true},
		{"relative/path", true},
		{"/ok/../../secret", true},
	}

	for _, tt := range tests {
		err := validateRequestPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateRequestPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
