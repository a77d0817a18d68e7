package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/resale"
	"github.com/etnz/resale/internal/cache"
	"github.com/etnz/resale/internal/logging"
	"github.com/etnz/resale/internal/server"
	"github.com/etnz/resale/internal/store/pgstore"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr    string
	migrate bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the reports over HTTP" }
func (*serveCmd) Usage() string {
	return `resale serve [-addr <host:port>] [-migrate]

  Serves the reports as JSON:
    GET /api/reports?year=<year|all>
    GET /api/reports/platforms?year=<year>&month=<1-12>
    GET /api/reports/platforms/<year>
    GET /api/years
    GET /healthz

  Reports are cached in Redis when REDIS_ADDR is set.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on. Overrides SERVER_ADDR.")
	f.BoolVar(&c.migrate, "migrate", false, "Create the transactions table first (postgres store only).")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := Settings()
	if err != nil {
		logging.Logger.WithError(err).Error("invalid configuration")
		return subcommands.ExitFailure
	}
	if c.addr != "" {
		settings.ServerAddr = c.addr
	}

	store, closer, err := OpenStore(ctx, settings)
	if err != nil {
		logging.Logger.WithError(err).WithField("store", settings.Store).Error("could not open the ledger store")
		return subcommands.ExitFailure
	}
	defer closer()

	if c.migrate {
		pg, ok := store.(*pgstore.Store)
		if !ok {
			logging.Logger.WithField("store", settings.Store).Error("-migrate needs the postgres store")
			return subcommands.ExitUsageError
		}
		if err := pg.Migrate(ctx); err != nil {
			logging.Logger.WithError(err).Error("could not migrate the transactions table")
			return subcommands.ExitFailure
		}
	}

	var reportCache server.Cache
	if settings.RedisAddr != "" {
		rc, err := cache.Open(ctx, settings.RedisAddr, settings.RedisPassword, settings.RedisDB, settings.CacheTTL)
		if err != nil {
			// the cache is optional: serve without it.
			logging.Logger.WithError(err).Warn("report cache disabled")
		} else {
			defer rc.Close()
			reportCache = rc
		}
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(resale.NewReporter(store), reportCache)
	if err := srv.Run(ctx, settings.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Logger.WithError(err).Error("server failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
