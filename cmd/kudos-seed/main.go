package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"io"
	"os"
	"time"

	"kudoswall/internal/core/version"
	"kudoswall/internal/platform/config"
	"kudoswall/internal/platform/logger"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/platform/store/schema"
	"kudoswall/internal/seed"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

func main() {
	version.Service = "kudos-seed"

	var (
		path      = flag.String("fixtures", "", "YAML fixtures file; empty uses the built in set")
		synthetic = flag.Int("synthetic", 0, "extra generated kudos between fixture users")
		rngSeed   = flag.Uint64("seed", 1, "seed for generated kudos")
		migrate   = flag.Bool("migrate", true, "apply schema migrations first")
		mirror    = flag.Bool("mirror", true, "mirror kudos into clickhouse when SERVICE_CLICKHOUSE_DBURL is set")
		dryRun    = flag.Bool("dry-run", false, "resolve fixtures and exit")
	)
	flag.Parse()

	l := logger.Get()
	ctx := context.Background()

	var src io.Reader = bytes.NewReader(defaultFixtures)
	if *path != "" {
		fh, err := os.Open(*path)
		if err != nil {
			l.Fatal().Err(err).Str("path", *path).Msg("open fixtures")
		}
		defer func() { _ = fh.Close() }()
		src = fh
	}

	fx, err := seed.Load(src)
	if err != nil {
		l.Fatal().Err(err).Msg("load fixtures")
	}
	plan, err := seed.Resolve(fx, time.Now())
	if err != nil {
		l.Fatal().Err(err).Msg("resolve fixtures")
	}
	plan = seed.Synthetic(plan, *synthetic, *rngSeed, time.Now())
	l.Info().Int("users", len(plan.Users)).Int("kudos", len(plan.Kudos)).Msg("fixtures resolved")
	if *dryRun {
		return
	}

	st, err := store.Open(ctx, store.ConfigFromEnv(config.New(), "kudos-seed"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if *migrate {
		if err := schema.Migrate(ctx, st.PG); err != nil {
			l.Error().Err(err).Msg("migrate failed")
			return
		}
	}
	if _, err := seed.Write(ctx, st.PG, plan); err != nil {
		l.Error().Err(err).Msg("seed failed")
		return
	}
	if *mirror && st.CH != nil {
		if err := seed.Mirror(ctx, st.CH, plan); err != nil {
			l.Error().Err(err).Msg("clickhouse mirror failed")
		}
	}
}
