package config

import (
	"bytes"
	"io"

	"github.com/a8m/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/lcr-robotics/lilpanini/autonomous"
)

// Read reads a config from the given file, substituting ${VAR} references with the
// environment first.
func Read(filePath string) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(filePath, bytes.NewReader(buf))
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader) (*Config, error) {
	cfg := Config{}
	if err := decode(r, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	cfg.ConfigFilePath = originalPath
	if err := cfg.Ensure(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadRoutine reads a routine from the given file, substituting ${VAR} references with
// the environment first. Steps are checked when the routine is built against the
// signals available to it.
func ReadRoutine(filePath string) (*autonomous.Routine, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return RoutineFromReader(bytes.NewReader(buf))
}

// RoutineFromReader reads a routine from the given reader.
func RoutineFromReader(r io.Reader) (*autonomous.Routine, error) {
	routine := autonomous.Routine{}
	if err := decode(r, &routine); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Routine from json")
	}
	return &routine, nil
}

// decode unmarshals JSON5 into result, rejecting keys result has no field for.
func decode(r io.Reader, result interface{}) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := json5.Unmarshal(buf, &raw); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      result,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
