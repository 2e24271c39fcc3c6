package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns a path for a throwaway database file. Every call
// gets its own directory, cleaned up when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "spendlog.db")
}
