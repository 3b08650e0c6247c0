package worldfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/robo-bootcamp/gobotic/logging"
)

// Recognized file extensions.
const (
	TextExt = ".txt"
	JSONExt = ".json"
)

// LoadFile loads the world description at path. The path must be a regular file with a .txt
// extension; .json files are recognized but fail with ErrNotImplemented.
func LoadFile(path string, logger logging.Logger, opts ...Option) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrNotFound, "no such file %q", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case TextExt:
		return LoadText(path, logger, opts...)
	case JSONExt:
		return LoadJSON(path, logger, opts...)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extension %q of %q", ext, path)
	}
}

// LoadText loads a text world description without checking the extension of path.
func LoadText(path string, logger logging.Logger, opts ...Option) (*Result, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open world description")
	}
	defer utils.UncheckedErrorFunc(f.Close)

	logger = logger.With(logging.PathKey, path)
	logger.Debug("loading world description")
	result, err := Parse(f, logger, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %q", path)
	}
	return result, nil
}

// LoadJSON is the json counterpart of LoadText. It is not implemented.
func LoadJSON(path string, logger logging.Logger, opts ...Option) (*Result, error) {
	return nil, errors.Wrapf(ErrNotImplemented, "failed to load %q", path)
}
