package worldfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"github.com/robo-bootcamp/gobotic/logging"
	"github.com/robo-bootcamp/gobotic/testutils"
	"github.com/robo-bootcamp/gobotic/utils"
)

func dataFile(name string) string {
	return utils.ResolveFile(filepath.Join("worldfile", "data", name))
}

func TestValidLoad(t *testing.T) {
	result, err := LoadFile(dataFile("sample_world.txt"), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Boundary, test.ShouldResemble, []float64{0, -5, 0, 10, 20, 6})
	test.That(t, result.Start, test.ShouldResemble, []float64{0, 0, 0})
	test.That(t, result.Goal, test.ShouldResemble, []float64{10, 20, 6})
	test.That(t, result.Obstacles, test.ShouldHaveLength, 4)
	test.That(t, result.Obstacles["obstacle_2"], test.ShouldResemble, []float64{0, 2, 1.5, 1, 2.5, 4.5})
	test.That(t, result.Warnings, test.ShouldBeEmpty)
}

func TestInvalidFile(t *testing.T) {
	_, err := LoadFile("invalid", logging.NewTestLogger(t))
	test.That(t, errors.Is(err, ErrNotFound), test.ShouldBeTrue)

	// directories are not regular files
	_, err = LoadFile(t.TempDir(), logging.NewTestLogger(t))
	test.That(t, errors.Is(err, ErrNotFound), test.ShouldBeTrue)
}

func TestNotSupportedFormat(t *testing.T) {
	_, err := LoadFile(dataFile("invalid1.json"), logging.NewTestLogger(t))
	test.That(t, errors.Is(err, ErrNotImplemented), test.ShouldBeTrue)
	test.That(t, errors.Is(err, ErrUnsupportedFormat), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "json loading is not implemented: unsupported world description format")

	path := testutils.WriteTempFile(t, "world.yaml", "boundary: 0,0,0,1,1,1\n")
	_, err = LoadFile(path, logging.NewTestLogger(t))
	test.That(t, errors.Is(err, ErrUnsupportedFormat), test.ShouldBeTrue)
	test.That(t, errors.Is(err, ErrNotImplemented), test.ShouldBeFalse)

	path = testutils.WriteTempFile(t, "WORLD.TXT", "boundary: 0,0,0,1,1,1\n")
	_, err = LoadFile(path, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
}

func TestInvalidSyntax(t *testing.T) {
	for _, name := range []string{"syntax_err1.txt", "syntax_err2.txt"} {
		result, err := LoadFile(dataFile(name), logging.NewTestLogger(t))
		test.That(t, result, test.ShouldBeNil)
		var syntaxErr *SyntaxError
		test.That(t, errors.As(err, &syntaxErr), test.ShouldBeTrue)
		test.That(t, syntaxErr.Line, test.ShouldEqual, 2)
		test.That(t, err.Error(), test.ShouldContainSubstring, name)
	}
}

func TestValueErrors(t *testing.T) {
	_, err := LoadFile(dataFile("value_err1.txt"), logging.NewTestLogger(t))
	test.That(t, errors.Is(err, ErrDuplicateKeyword), test.ShouldBeTrue)
}

func TestRepeatedObstacleWarnings(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	result, err := LoadFile(dataFile("warn_obs_repeat.txt"), logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Warnings, test.ShouldHaveLength, 1)
	test.That(t, result.Warnings[0].Kind, test.ShouldEqual, RepeatedObstacle)
	test.That(t, observed.FilterField(observedKind(RepeatedObstacle)).Len(), test.ShouldEqual, 1)

	warnings := observed.FilterLevelExact(logging.WARN.AsZap()).All()
	test.That(t, warnings, test.ShouldHaveLength, 1)
	test.That(t, warnings[0].ContextMap(), test.ShouldResemble, map[string]interface{}{
		"path": dataFile("warn_obs_repeat.txt"),
		"kind": string(RepeatedObstacle),
		"line": int64(5),
	})
}

func TestMissingBoundary(t *testing.T) {
	_, err := LoadFile(dataFile("no_bound.txt"), logging.NewTestLogger(t))
	var keyErr *KeyError
	test.That(t, errors.As(err, &keyErr), test.ShouldBeTrue)
}

func TestShapeErrors(t *testing.T) {
	for file := 1; file <= 3; file++ {
		name := fmt.Sprintf("shape_error%d.txt", file)
		_, err := LoadFile(dataFile(name), logging.NewTestLogger(t))
		test.That(t, errors.Is(err, ErrWrongArity), test.ShouldBeTrue)
	}
}

func TestKeywordMissing(t *testing.T) {
	result, err := LoadFile(dataFile("warn1.txt"), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Warnings, test.ShouldHaveLength, 1)
	test.That(t, result.Warnings[0].Kind, test.ShouldEqual, MissingStart)
}

func TestLoadUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	path := testutils.WriteTempFile(t, "locked.txt", "boundary: 0,0,0,1,1,1\n")
	test.That(t, os.Chmod(path, 0), test.ShouldBeNil)
	_, err := LoadFile(path, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrNotFound), test.ShouldBeFalse)
	test.That(t, errors.Is(err, os.ErrPermission), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to open world description")
}
