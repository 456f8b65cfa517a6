package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilesh-iiita/hiveplot/internal/server"
	"github.com/nilesh-iiita/hiveplot/pkg/cache"
	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	srvCfg := c.Config.Server

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the hiveplot HTTP API server",
		Long: `Run the hiveplot HTTP API server.

The server exposes the layout and render pipeline over HTTP:

  POST /api/v1/layout   compute a layout from a graph
  POST /api/v1/render   render artifacts from a graph
  GET  /api/v1/health   liveness probe

The cache backend defaults to the local file cache. For shared
deployments, Redis or MongoDB can hold the cache instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), srvCfg)
		},
	}

	cmd.Flags().StringVar(&srvCfg.Addr, "addr", srvCfg.Addr, "listen address")
	cmd.Flags().StringVar(&srvCfg.CacheBackend, "cache-backend", srvCfg.CacheBackend, "cache backend: file (default), redis, mongo, none")
	cmd.Flags().StringVar(&srvCfg.RedisAddr, "redis-addr", srvCfg.RedisAddr, "redis address (cache-backend=redis)")
	cmd.Flags().IntVar(&srvCfg.RedisDB, "redis-db", srvCfg.RedisDB, "redis database number (cache-backend=redis)")
	cmd.Flags().StringVar(&srvCfg.MongoURI, "mongo-uri", srvCfg.MongoURI, "mongodb connection URI (cache-backend=mongo)")
	cmd.Flags().StringVar(&srvCfg.MongoDB, "mongo-db", srvCfg.MongoDB, "mongodb database name (cache-backend=mongo)")

	return cmd
}

// runServe builds the cache backend and runs the server until the context
// is canceled.
func (c *CLI) runServe(ctx context.Context, srvCfg ServerConfig) error {
	store, err := c.newServerCache(ctx, srvCfg)
	if err != nil {
		return fmt.Errorf("initialize cache backend: %w", err)
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	cfg := server.DefaultConfig()
	cfg.Addr = srvCfg.Addr

	c.Logger.Info("starting server", "addr", cfg.Addr, "cache", srvCfg.CacheBackend)
	return server.New(runner, c.Logger, cfg).ListenAndServe(ctx)
}

// newServerCache builds the cache backend named by the config.
func (c *CLI) newServerCache(ctx context.Context, srvCfg ServerConfig) (cache.Cache, error) {
	switch srvCfg.CacheBackend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, srvCfg.RedisAddr, "", srvCfg.RedisDB, appName+":")
	case "mongo":
		return cache.NewMongoCache(ctx, srvCfg.MongoURI, srvCfg.MongoDB, "cache")
	case "file", "":
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", srvCfg.CacheBackend)
	}
}
