package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags bound to a
// [pflag.FlagSet] by [BindFlags]. Unset flags keep their zero value so
// lower priority sources can fill them.
type Flags struct {
	cfg StructuredConfig
}

// BindFlags registers all configuration flags on fs and returns the holder
// their values are parsed into. Pass the result to [Load] after fs has been
// parsed (cobra does this before running a command).
//
// Flags:
//
//	--config       JSON or YAML config file path
//	--user         default vault owner username
//	--key-file     master key file path
//	--key-env      environment variable holding the base64 master key
//	--cipher       cipher suite for new ciphertexts
//	--argon-time / --argon-memory / --argon-threads  Argon2id cost
//	--db-driver    postgres, mysql or sqlite
//	--db-dsn       database DSN
//	--db-timeout   per command storage timeout (e.g. "10s")
//	--log-level    zerolog level name
//	--log-file     log file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	c := &f.cfg

	fs.StringVarP(&c.FilePath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVarP(&c.App.Username, "user", "u", "", "Vault owner username")

	fs.StringVar(&c.Crypto.KeyFile, "key-file", "", "Master key file path")
	fs.StringVar(&c.Crypto.KeyEnv, "key-env", "", "Environment variable holding the base64 master key")
	fs.StringVar(&c.Crypto.Suite, "cipher", "", "Cipher suite for new secrets (aes-256-gcm, xchacha20-poly1305)")
	fs.Uint32Var(&c.Crypto.Argon2.Time, "argon-time", 0, "Argon2id iterations")
	fs.Uint32Var(&c.Crypto.Argon2.MemoryKiB, "argon-memory", 0, "Argon2id memory in KiB")
	fs.Uint8Var(&c.Crypto.Argon2.Threads, "argon-threads", 0, "Argon2id parallelism")

	fs.StringVar(&c.Storage.DB.Driver, "db-driver", "", "Database driver (postgres, mysql, sqlite)")
	fs.StringVar(&c.Storage.DB.DSN, "db-dsn", "", "Database DSN")
	fs.DurationVar(&c.Storage.DB.Timeout, "db-timeout", 0, "Storage timeout per command (e.g., 10s)")

	fs.StringVar(&c.Log.Level, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	fs.StringVar(&c.Log.File, "log-file", "", "Log file path")

	return f
}

func (f *Flags) config() *StructuredConfig {
	cfg := f.cfg
	return &cfg
}
