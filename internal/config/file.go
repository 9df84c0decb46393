package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML decoding.
type fileConfig struct {
	App struct {
		Username string `json:"user" yaml:"user"`
		Version  string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Crypto struct {
		KeyFile string `json:"key_file" yaml:"key_file"`
		KeyEnv  string `json:"key_env" yaml:"key_env"`
		Suite   string `json:"suite" yaml:"suite"`
		Argon2  struct {
			Time      uint32 `json:"time" yaml:"time"`
			MemoryKiB uint32 `json:"memory_kib" yaml:"memory_kib"`
			Threads   uint8  `json:"threads" yaml:"threads"`
		} `json:"argon2" yaml:"argon2"`
	} `json:"crypto" yaml:"crypto"`

	Storage struct {
		DB struct {
			Driver  string   `json:"driver" yaml:"driver"`
			DSN     string   `json:"dsn" yaml:"dsn"`
			Timeout Duration `json:"timeout" yaml:"timeout"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileFormat, path)
	}

	return &StructuredConfig{
		App: App{
			Username: fc.App.Username,
			Version:  fc.App.Version,
		},
		Crypto: Crypto{
			KeyFile: fc.Crypto.KeyFile,
			KeyEnv:  fc.Crypto.KeyEnv,
			Suite:   fc.Crypto.Suite,
			Argon2: Argon2{
				Time:      fc.Crypto.Argon2.Time,
				MemoryKiB: fc.Crypto.Argon2.MemoryKiB,
				Threads:   fc.Crypto.Argon2.Threads,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver:  fc.Storage.DB.Driver,
				DSN:     fc.Storage.DB.DSN,
				Timeout: time.Duration(fc.Storage.DB.Timeout),
			},
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(s); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
