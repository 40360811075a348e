package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	RegisterServerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlagSet(t), "")
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, &want, cfg)
}

func TestLoad_Flags(t *testing.T) {
	fs := newFlagSet(t,
		"--db", "/tmp/records.db",
		"--backend", "sqlite",
		"--log-level", "debug",
		"--log-format", "json",
		"--addr", ":9090",
		"--max-upload-bytes", "1024",
		"--shutdown-timeout", "15s",
		"--rate-limit", "0",
	)

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/records.db", cfg.DBPath)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 0, cfg.RateLimit)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DRFRIEND_DB", "/var/lib/drfriend.db")
	t.Setenv("DRFRIEND_LOG_LEVEL", "error")
	t.Setenv("DRFRIEND_SHUTDOWN_TIMEOUT", "1m")

	cfg, err := Load(newFlagSet(t), "")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/drfriend.db", cfg.DBPath)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("DRFRIEND_BACKEND", "sqlite")

	cfg, err := Load(newFlagSet(t, "--backend", "bolt"), "")
	require.NoError(t, err)
	assert.Equal(t, BackendBolt, cfg.Backend)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drfriend.yaml")
	content := "db: from-file.db\nbackend: sqlite\nlog-format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DRFRIEND_LOG_FORMAT", "text")

	cfg, err := Load(newFlagSet(t), path)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.DBPath)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	// Переменная окружения важнее файла
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(newFlagSet(t), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "backend", args: []string{"--backend", "postgres"}},
		{name: "log level", args: []string{"--log-level", "verbose"}},
		{name: "log format", args: []string{"--log-format", "xml"}},
		{name: "empty db", args: []string{"--db", " "}},
		{name: "upload size", args: []string{"--max-upload-bytes", "0"}},
		{name: "shutdown timeout", args: []string{"--shutdown-timeout", "0s"}},
		{name: "rate limit", args: []string{"--rate-limit", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newFlagSet(t, tt.args...), "")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
