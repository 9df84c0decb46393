// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Same limits the credential hasher accepts on verify.
const (
	maxArgon2Time      = 16
	maxArgon2MemoryKiB = 1 << 20
)

var (
	supportedDrivers = []string{DriverPostgres, DriverMySQL, DriverSQLite}
	supportedSuites  = []string{SuiteAESGCM, SuiteXChaCha}
	logLevels        = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// ErrInvalidStorageConfigs, ErrInvalidCryptoConfigs or ErrInvalidLogConfigs.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if !slices.Contains(supportedDrivers, db.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}
	if db.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidStorageConfigs)
	}

	c := cfg.Crypto
	if c.KeyFile == "" && c.KeyEnv == "" {
		return fmt.Errorf("%w: no master key source", ErrInvalidCryptoConfigs)
	}
	if !slices.Contains(supportedSuites, c.Suite) {
		return fmt.Errorf("%w: unknown cipher suite %q", ErrInvalidCryptoConfigs, c.Suite)
	}
	if c.Argon2.Time == 0 || c.Argon2.MemoryKiB == 0 || c.Argon2.Threads == 0 {
		return fmt.Errorf("%w: argon2 cost parameters must be positive", ErrInvalidCryptoConfigs)
	}
	if c.Argon2.MemoryKiB < 8*uint32(c.Argon2.Threads) {
		return fmt.Errorf("%w: argon2 memory below 8 KiB per thread", ErrInvalidCryptoConfigs)
	}
	if c.Argon2.Time > maxArgon2Time || c.Argon2.MemoryKiB > maxArgon2MemoryKiB {
		return fmt.Errorf("%w: argon2 cost above t=%d, m=%d KiB", ErrInvalidCryptoConfigs, maxArgon2Time, maxArgon2MemoryKiB)
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}
	if cfg.Log.Level != "disabled" && cfg.Log.File == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}

	return nil
}
