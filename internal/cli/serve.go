package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/internal/server"
	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// redisURLEnv names the environment variable read when --redis is unset.
const redisURLEnv = "TAGCLOUD_REDIS_URL"

// serveOptions are the cache settings of the serve command.
type serveOptions struct {
	redisURL string
	prefix   string
	noCache  bool
}

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
		so      serveOptions
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes POST /v1/clouds, GET /healthz and GET /version.

Layouts and artifacts are cached in Redis when --redis (or ` + redisURLEnv + `)
is set, so several replicas can share work. Otherwise the local file cache
is used. Every key is scoped by --cache-prefix, so deployments sharing one
store do not see each other's entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if so.redisURL == "" {
				so.redisURL = os.Getenv(redisURLEnv)
			}
			runner, err := c.serveRunner(cmd.Context(), so)
			if err != nil {
				return err
			}
			defer runner.Close()

			return server.New(runner, c.Logger, server.WithTimeout(timeout)).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "longest time one cloud may take")
	cmd.Flags().StringVar(&so.redisURL, "redis", "", "redis:// URL of a shared cache")
	cmd.Flags().StringVar(&so.prefix, "cache-prefix", appName+":", "namespace for every cache key")
	cmd.Flags().BoolVar(&so.noCache, "no-cache", false, "disable caching")

	return cmd
}

// serveRunner builds the runner behind the API: Redis, the file cache or
// none, with keys scoped by so.prefix.
func (c *CLI) serveRunner(ctx context.Context, so serveOptions) (*pipeline.Runner, error) {
	var cc cache.Cache
	var err error
	switch {
	case so.noCache:
		cc = cache.NewNullCache()
	case so.redisURL != "":
		cc, err = cache.NewRedisCache(ctx, cache.RedisOptions{URL: so.redisURL})
		if err == nil {
			c.Logger.Info("using redis cache", "prefix", so.prefix)
		}
	default:
		cc, err = c.newCache(false)
	}
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if so.prefix != "" {
		keyer = cache.NewScopedKeyer(nil, so.prefix)
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}
