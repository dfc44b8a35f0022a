package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtower/pkg/api"
	"github.com/matzehuels/permtower/pkg/config"
	"github.com/matzehuels/permtower/pkg/store"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the JSON API server. Cache and store backends come from the config
file; by default closures are memoized on disk and records kept in memory.

  permtower serve
  permtower serve --addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			memo, err := c.newCache(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer memo.Close()

			records, err := newStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer records.Close(context.Background())

			server := api.NewServer(api.Options{
				Logger:    logger,
				Store:     records,
				Cache:     memo,
				MaxDegree: cfg.MaxDegree,
				CacheTTL:  time.Duration(cfg.Cache.TTLHours) * time.Hour,
			})
			return server.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

// newStore builds the persistence backend selected by the config.
func newStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
	default:
		return store.NewMemoryStore(), nil
	}
}
