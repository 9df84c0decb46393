package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RoleField verifies that every entry contains the expected "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New("lvl", &buf, zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

// TestNew_CallerAndFuncFields verifies that the caller field does not clash
// with the "func" field set by call sites.
func TestNew_CallerAndFuncFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("caller-role", &buf, zerolog.DebugLevel)

	l.Info().Str("func", "*vaultService.CreateEntry").Msg("created")

	assert.Equal(t, 1, strings.Count(buf.String(), `"func":`))
	assert.Equal(t, 1, strings.Count(buf.String(), `"caller":`))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "*vaultService.CreateEntry", entry["func"])
	assert.Contains(t, entry["caller"], "TestNew_CallerAndFuncFields")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vault.log")

	l, closer, err := NewFileLogger("vault-cli", path, "info")
	require.NoError(t, err)
	l.Info().Msg("to file")
	l.Debug().Msg("below level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.NotContains(t, string(data), "below level")
	assert.Equal(t, 1, strings.Count(string(data), "\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewFileLogger_BadLevel(t *testing.T) {
	_, _, err := NewFileLogger("vault-cli", filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
}

func TestNewFileLogger_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	l, closer, err := NewFileLogger("vault-cli", path, "disabled")
	require.NoError(t, err)
	l.Error().Msg("nothing")
	require.NoError(t, closer.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestWithContext_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New("ctx-role", &buf, zerolog.DebugLevel)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
	assert.Equal(t, "via ctx", entry["message"])
}

func TestFromContext_EmptyContextNotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContextOr(t *testing.T) {
	var ctxBuf, fallbackBuf bytes.Buffer
	attached := New("ctx", &ctxBuf, zerolog.DebugLevel)
	fallback := New("fallback", &fallbackBuf, zerolog.DebugLevel)

	FromContextOr(context.Background(), fallback).Info().Msg("used fallback")
	assert.Contains(t, fallbackBuf.String(), "used fallback")

	FromContextOr(attached.WithContext(context.Background()), fallback).Info().Msg("used attached")
	assert.Contains(t, ctxBuf.String(), "used attached")
	assert.NotContains(t, fallbackBuf.String(), "used attached")

	require.NotNil(t, FromContextOr(context.Background(), nil))
}
