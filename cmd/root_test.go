package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/risescan/api"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "debug", want: slog.LevelDebug},
		{value: "INFO", want: slog.LevelInfo},
		{value: "warn", want: slog.LevelWarn},
		{value: "error", want: slog.LevelError},
		{value: "", want: slog.LevelWarn},
		{value: "loud", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, parseLogLevel(slog.LevelWarn))
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{api.EnvBaseURL, api.EnvTimeout, api.EnvMaxAttempts, api.EnvRetryDelay, api.EnvRateLimit} {
		t.Setenv(key, "")
	}
}

func TestStatsCommand(t *testing.T) {
	clearEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "ethsupply":
			_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":"1000000000000000000"}`))
		default:
			_, _ = w.Write([]byte(`{"status":"0","message":"No data","result":null}`))
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	rootCmd.SetArgs([]string{"stats", "--base-url", server.URL, "-o", dir, "--rate-limit=-1", "--retries=-1", "-q"})
	require.NoError(t, Execute(context.Background()))

	files, err := filepath.Glob(filepath.Join(dir, "json", "stats", "*_network_stats.json"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestBalanceCommand_TooManyAddresses(t *testing.T) {
	clearEnv(t)
	args := []string{"balance"}
	for i := 0; i <= api.MaxBalanceMultiAddresses; i++ {
		args = append(args, "0x95426f2bc716022fcf1def006dbc4bb81f5b5164")
	}
	rootCmd.SetArgs(args)

	assert.Error(t, Execute(context.Background()))
}
