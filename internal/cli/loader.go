package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokeapi"
	"github.com/rshade/pokedex/internal/pokedex"
	"github.com/rshade/pokedex/pkg/version"
)

// newLoader builds the API client and loader described by cfg.
func newLoader(ctx context.Context, cfg *config.Config, opts ...pokedex.LoaderOption) (*pokedex.Loader, error) {
	client, err := pokeapi.NewClient(
		pokeapi.WithBaseURL(cfg.API.BaseURL),
		pokeapi.WithTimeout(cfg.API.Timeout),
		pokeapi.WithRateLimit(cfg.API.RateLimit),
		pokeapi.WithUserAgent(version.UserAgent()),
		pokeapi.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "pokeapi")),
	)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	loaderOpts := append([]pokedex.LoaderOption{
		pokedex.WithLimit(cfg.API.Limit),
		pokedex.WithConcurrency(cfg.API.Concurrency),
	}, opts...)
	return pokedex.NewLoader(client, loaderOpts...), nil
}

// effectiveConfig returns the global config after flag overrides, or an
// error when it cannot be used to load data.
func effectiveConfig() (*config.Config, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadAll runs a full load with the global config, logging its outcome.
func loadAll(ctx context.Context, opts ...pokedex.LoaderOption) ([]pokedex.Pokemon, error) {
	log := logging.FromContext(ctx)
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}

	loader, err := newLoader(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	list, err := loader.Load(ctx)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("base_url", cfg.API.BaseURL).Msg("loading Pokémon failed")
		return nil, fmt.Errorf("loading Pokémon: %w", err)
	}
	log.Debug().Ctx(ctx).
		Int("count", len(list)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Pokémon loaded")
	return list, nil
}
