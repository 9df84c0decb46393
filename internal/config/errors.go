package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates invalid crypto settings
	// (for example, no key source, unknown cipher suite or zero Argon2 cost).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidLogConfigs indicates invalid log settings.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnsupportedFileFormat is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
)
