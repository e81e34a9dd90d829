package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/config"
	"github.com/xraph/dispatch/errors"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "std", cfg.Server.Backend)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestParse(t *testing.T) {
	t.Setenv("DISPATCH_TEST_PORT", "9090")

	cfg, err := config.Parse([]byte(`
server:
  addr: ":${DISPATCH_TEST_PORT}"
  backend: chi
  read_timeout: 5s
logging:
  level: debug
  format: console
limits:
  request_timeout: 2s
  max_in_flight: 64
  rate_per_second: 100
  burst: 20
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "chi", cfg.Server.Backend)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2*time.Second, cfg.Limits.RequestTimeout)
	assert.EqualValues(t, 64, cfg.Limits.MaxInFlight)
	assert.Equal(t, 20, cfg.Limits.Burst)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantKey string
	}{
		{"unknown key", "server:\n  port: 80\n", ""},
		{"malformed", "server: [", ""},
		{"unknown backend", "server:\n  backend: gorilla\n", "server.backend"},
		{"empty addr", "server:\n  addr: \"\"\n", "server.addr"},
		{"negative timeout", "server:\n  read_timeout: -1s\n", "server.read_timeout"},
		{"rate without burst", "limits:\n  rate_per_second: 5\n", "limits.burst"},
		{"metrics path", "metrics:\n  path: metrics\n", "metrics.path"},
		{"tracing ratio", "tracing:\n  enabled: true\n  sample_ratio: 2\n", "tracing.sample_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)

			if tt.wantKey == "" {
				assert.ErrorIs(t, err, errors.ErrConfigErrorSentinel)
				return
			}

			var dispatchErr *errors.DispatchError
			require.True(t, errors.As(err, &dispatchErr))
			assert.Equal(t, errors.CodeInvalidConfig, dispatchErr.Code)
			assert.Equal(t, tt.wantKey, dispatchErr.Context["key"])
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  backend: bunrouter\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bunrouter", cfg.Server.Backend)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errors.ErrConfigErrorSentinel)
}
