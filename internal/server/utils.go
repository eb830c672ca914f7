package server

import (
	"fmt"
	"path"
	"strings"
)

// normalizeRequestPath cleans the request path so that lookups against the
// serving root are consistent. The empty path means the site root.
func normalizeRequestPath(rawPath string) string {
	if rawPath == "" {
		return "/"
	}
	return path.Clean(rawPath)
}

// validateRequestPath rejects paths that try to step outside the serving
// root. A cleaned absolute path cannot contain ".." segments, so anything
// that still does (or that lost its leading slash) is a traversal attempt.
func validateRequestPath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path traversal attempt detected")
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("path traversal attempt detected")
		}
	}
	return nil
}
