package utils

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestResolveFile(t *testing.T) {
	resolved := ResolveFile("worldfile/data/sample_world.txt")
	test.That(t, filepath.IsAbs(resolved), test.ShouldBeTrue)
	_, err := os.Stat(resolved)
	test.That(t, err, test.ShouldBeNil)
}

func TestExpandHomeDir(t *testing.T) {
	home, err := os.UserHomeDir()
	test.That(t, err, test.ShouldBeNil)

	expanded, err := ExpandHomeDir("~/worlds/a.txt")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, expanded, test.ShouldEqual, filepath.Join(home, "worlds/a.txt"))

	expanded, err = ExpandHomeDir("/tmp/a.txt")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, expanded, test.ShouldEqual, "/tmp/a.txt")
}

func TestErrors(t *testing.T) {
	err := NewConfigValidationFieldRequiredError("config.json", "world_file")
	test.That(t, err.Error(), test.ShouldEqual, `config.json: "world_file" is required`)
}
