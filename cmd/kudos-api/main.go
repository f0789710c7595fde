// @title         Kudos Wall API
// @version       0.1.0
// @description   Read only endpoints for the kudos wall, users and dashboards

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kudoswall/internal/core/version"
	"kudoswall/internal/platform/config"
	"kudoswall/internal/platform/logger"
	phttp "kudoswall/internal/platform/net/http"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/platform/store/schema"

	"kudoswall/internal/services/api"
)

func main() {
	version.Service = "kudos-api"

	// service-scoped config for HTTP etc (KUDOS_API_*)
	root := config.New()
	apiCfg := root.Prefix("KUDOS_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres is required, clickhouse only when SERVICE_CLICKHOUSE_DBURL is set
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "kudos-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if apiCfg.MayBool("MIGRATE", true) {
		if err := schema.Migrate(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("migrate failed")
		}
		if st.CH != nil {
			if err := schema.EnsureClickhouse(ctx, st.CH); err != nil {
				l.Panic().Err(err).Msg("clickhouse schema failed")
			}
		}
	}

	// http server (reads KUDOS_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	opts := api.FromConfig(apiCfg, st)
	opts.Logger = l
	api.Mount(srv.Router(), opts)

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown failed")
		}
		<-errc
	}
}
