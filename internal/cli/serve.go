package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/api"
	"github.com/matzehuels/segaxis/pkg/cache"
	"github.com/matzehuels/segaxis/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command that exposes the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		cacheURL string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render API over HTTP",
		Long: `Serve the layout and render API over HTTP.

Routes:
  GET  /healthz
  POST /v1/layout
  POST /v1/render/{format}

The --cache flag selects the cache backend:
  (empty)                      local file cache under the user cache dir
  none                         caching disabled
  redis://host:6379/0          Redis
  mongodb://host:27017/segaxis MongoDB (collection via ?collection=)
  file:///path or /path        file cache at that directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, cacheURL)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "HTTP listen address")
	cmd.Flags().StringVar(&cacheURL, "cache", "", "cache backend URL")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, cacheURL string) error {
	backend, err := c.openServeCache(ctx, cacheURL)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(backend, nil, c.Logger)
	defer runner.Close()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return serve(ctx, ln, api.New(runner, c.Logger), c)
}

// openServeCache resolves the --cache flag. An empty value uses the same
// file cache as the other commands.
func (c *CLI) openServeCache(ctx context.Context, rawURL string) (cache.Cache, error) {
	if rawURL == "" {
		return newCache(false)
	}
	backend, err := cache.Open(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return backend, nil
}

// serve runs an HTTP server on ln until ctx is cancelled, then shuts it
// down gracefully.
func serve(ctx context.Context, ln net.Listener, h http.Handler, c *CLI) error {
	server := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	printSuccess("Listening")
	printKeyValue("Address", "http://"+ln.Addr().String())
	c.Logger.Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	c.Logger.Info("server exited gracefully")
	return nil
}
