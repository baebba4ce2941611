package mcp

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// resolvePath makes a tool's file argument absolute against the project root.
func resolvePath(projectRoot, file string) string {
	if filepath.IsAbs(file) || projectRoot == "" {
		return file
	}
	return filepath.Join(projectRoot, file)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
