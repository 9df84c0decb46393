package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that building with only defaults yields a
// valid configuration equal to Defaults().
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a zero config is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take precedence for
// non-zero fields and later ones only fill gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://first"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://second"}}, App: App{Username: "alice"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://first", cfg.Storage.DB.DSN)
	assert.Equal(t, "alice", cfg.App.Username)
	assert.Equal(t, 10*time.Second, cfg.Storage.DB.Timeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("VAULT_APP_VERSION", "env-version")
	t.Setenv("VAULT_CRYPTO_SUITE", SuiteXChaCha)

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, SuiteXChaCha, b.configs[0].Crypto.Suite)
}

// TestWithEnv_SetsErrorOnBadValue verifies that unparsable values are
// collected in b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("VAULT_CRYPTO_ARGON2_THREADS", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilSkipped verifies that a nil *Flags adds nothing.
func TestWithFlags_NilSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsParsedValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--db-driver", "mysql", "--user", "bob"}))

	b := newConfigBuilder()
	b.withFlags(flags)

	require.Len(t, b.configs, 1)
	assert.Equal(t, DriverMySQL, b.configs[0].Storage.DB.Driver)
	assert.Equal(t, "bob", b.configs[0].App.Username)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withFile())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempConfig(t, "vault.json", `{"app":{"version":"json-version"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

// TestWithFile_UsesFirstPath verifies that the highest priority source
// naming a file wins.
func TestWithFile_UsesFirstPath(t *testing.T) {
	first := writeTempConfig(t, "first.json", `{"app":{"version":"first"}}`)
	second := writeTempConfig(t, "second.json", `{"app":{"version":"second"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{},
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		FilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Precedence verifies flags > env > file > defaults.
func TestLoad_Precedence(t *testing.T) {
	path := writeTempConfig(t, "vault.yaml", `
crypto:
  suite: xchacha20-poly1305
  key_file: from-file.key
storage:
  db:
    dsn: from-file.db
    timeout: 3s
log:
  level: warn
`)
	t.Setenv("VAULT_CONFIG", path)
	t.Setenv("VAULT_STORAGE_DB_DSN", "from-env.db")
	t.Setenv("VAULT_LOG_LEVEL", "error")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.Timeout)
	assert.Equal(t, SuiteXChaCha, cfg.Crypto.Suite)
	assert.Equal(t, "from-file.key", cfg.Crypto.KeyFile)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "vault.log", cfg.Log.File)
	assert.Equal(t, uint32(3), cfg.Crypto.Argon2.Time)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("VAULT_STORAGE_DB_DRIVER", "oracle")

	cfg, err := Load(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
