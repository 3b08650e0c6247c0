// Package testutils provides helpers shared by tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

// WriteTempFile writes content to a file called name in a fresh temporary directory and returns
// its path. The directory is removed when the test ends.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o600)
	test.That(t, err, test.ShouldBeNil)
	return path
}
