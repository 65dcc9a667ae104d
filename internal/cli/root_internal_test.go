package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokedex/internal/config"
)

func TestApplyFlagOverrides_ExplicitZero(t *testing.T) {
	cmd := NewRootCmdWithArgs("test", func(string) (string, bool) { return "", false })
	require.NoError(t, cmd.ParseFlags([]string{"--concurrency", "0", "--timeout", "0", "--rate-limit", "0"}))

	cfg := config.Default()
	cfg.API.Concurrency = 4
	cfg.API.Timeout = 10 * time.Second
	cfg.API.RateLimit = 5
	cfg.API.Limit = 20

	applyFlagOverrides(cmd, cfg)

	assert.Equal(t, 0, cfg.API.Concurrency)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.InDelta(t, 0, cfg.API.RateLimit, 0)
	assert.Equal(t, 20, cfg.API.Limit, "unset flags keep the configured value")
}

func TestRootFlags_HelpMatchesZeroSemantics(t *testing.T) {
	cmd := NewRootCmdWithArgs("test", func(string) (string, bool) { return "", false })

	for _, name := range []string{flagLimit, flagConcurrency, flagTimeout, flagRateLimit} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.NotContains(t, flag.Usage, "0 = use config default", name)
	}
	assert.Contains(t, cmd.PersistentFlags().Lookup(flagConcurrency).Usage, "0 for unbounded")
	assert.Contains(t, cmd.PersistentFlags().Lookup(flagLimit).Usage, "at least 1")
}

func TestOutputMode_PlainFlags(t *testing.T) {
	for _, flag := range []string{"--plain", "--no-color"} {
		cmd := NewRootCmdWithArgs("test", func(string) (string, bool) { return "", false })
		require.NoError(t, cmd.ParseFlags([]string{"--force-color", flag}))
		assert.Equal(t, "plain", outputMode(cmd).String(), flag)
	}
}
