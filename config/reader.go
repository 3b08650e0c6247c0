package config

import (
	"bytes"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Read reads a config from the given file. Environment variables referenced in the file as
// $VAR or ${VAR} are substituted before decoding.
func Read(filePath string) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(filePath, bytes.NewReader(buf))
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
// The content is JSON5, so comments and trailing commas are allowed.
// The world file may be left out and given on the command line instead, so the result is
// only fully valid once Validate passes.
func FromReader(originalPath string, r io.Reader) (*Config, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Config")
	}
	cfg := Config{
		ConfigFilePath: originalPath,
	}
	if err := decodeJSON5(buf, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validateLimits(originalPath); err != nil {
		return nil, errors.Wrapf(err, "failed to process Config")
	}
	if err := cfg.resolveWorldFile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeJSON5 unmarshals buf into v. The json5 scanner can panic on input that is not JSON at
// all, which is reported as a regular error.
func decodeJSON5(buf []byte, v interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("invalid json5: %v", r)
		}
	}()
	return json5.Unmarshal(buf, v)
}
