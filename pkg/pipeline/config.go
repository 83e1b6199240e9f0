package pipeline

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// LoadOptions reads options from a .toml, .yaml, .yml or .json file.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func LoadOptions(path string) (Options, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return Options{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Options{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: '%s'", path)
	}
	if err != nil {
		return Options{}, err
	}

	opts, err := DecodeOptions(data, filepath.Ext(path))
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cannot read config %s", path)
	}
	return opts, nil
}

// DecodeOptions decodes options from data in the format named by ext
// (".toml", ".yaml", ".yml" or ".json").
func DecodeOptions(data []byte, ext string) (Options, error) {
	var opts Options
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return Options{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && err != io.EOF {
			return Options{}, err
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return Options{}, err
		}
	default:
		return Options{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (use .toml, .yaml or .json)", ext)
	}
	return opts, nil
}
