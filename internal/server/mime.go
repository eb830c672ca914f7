package server

import (
	"path"
	"strings"
)

// MIMETable maps file extensions to Content-Type values. It is built once
// at startup and never mutated afterward, so the server can be embedded in
// a larger process without touching the global mime registry.
type MIMETable map[string]string

// NewMIMETable builds the lookup table from the built-in defaults with the
// given overrides merged on top. Browsers refuse to instantiate .wasm
// modules served as text/plain, and .dds textures have no registered type
// at all on most systems.
func NewMIMETable(overrides map[string]string) MIMETable {
	t := MIMETable{
		".dds":  "application/octet-stream",
		".wasm": "application/wasm",
	}
	for ext, typ := range overrides {
		t[normalizeExt(ext)] = typ
	}
	return t
}

// Lookup returns the Content-Type for a request path, or "" when the table
// has no entry and the file server's own extension handling should decide.
func (t MIMETable) Lookup(requestPath string) string {
	ext := strings.ToLower(path.Ext(requestPath))
	if ext == "" {
		return ""
	}
	return t[ext]
}

// normalizeExt lowercases an extension and ensures the leading dot, so
// config entries like "DDS" and ".dds" mean the same thing.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
