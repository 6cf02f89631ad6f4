package config

import (
	"bytes"
	"context"
	"io"

	"github.com/jmgilman/go/fs/core"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/exceptions/errors"
)

// Parse decodes a YAML configuration document and validates it.
// Fields missing from data keep their default values; unknown fields are an
// error. An empty document yields Default().
//
// Returns CodeConfigLoad on malformed YAML and CodeInvalidConfig when the
// decoded configuration violates the schema.
func Parse(ctx context.Context, data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, errors.CodeConfigLoad, "failed to decode configuration")
	}

	if err := Validate(ctx, cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the YAML configuration at path from fsys and parses it.
//
// Returns CodeConfigLoad if the file cannot be read.
func Load(ctx context.Context, fsys core.ReadFS, path string) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeConfigLoad, "context cancelled",
			map[string]interface{}{"file_path": path})
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeConfigLoad, "failed to read configuration",
			map[string]interface{}{"file_path": path})
	}

	cfg, err := Parse(ctx, data)
	if err != nil {
		return Config{}, errors.WithContext(err, "file_path", path)
	}

	return cfg, nil
}
