package server

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// treeState fingerprints the (path, size, mtime) tuples under dir so the
// reloader can tell real changes apart from events that left the tree
// untouched. Hidden directories are skipped, matching the watcher.
func treeState(dir string) (string, error) {
	h := blake3.New()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := filepath.Base(path); name[0] == '.' && path != dir && path != "." {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(h, "%s:%d:%d;", path, info.Size(), info.ModTime().UnixNano()); err != nil {
			return fmt.Errorf("failed to write to hash: %w", err)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
