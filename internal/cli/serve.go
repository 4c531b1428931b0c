package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkuchta/orbit/internal/api"
	"github.com/mkuchta/orbit/pkg/cache"
	"github.com/mkuchta/orbit/pkg/store"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		dir      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

The server exposes layout computation and plan storage endpoints. By default
plans live in the local file store and layout responses are cached on disk;
--mongo and --redis switch those to shared backends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, mongoURI, dir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis address for the layout cache (default: file cache)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for the plan store (default: file store)")
	cmd.Flags().StringVar(&dir, "data-dir", "", "plan store directory (default: XDG data dir)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL, mongoURI, dir string) error {
	st, err := c.openStore(ctx, mongoURI, dir)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	ca, err := c.openCache(ctx, redisURL)
	if err != nil {
		return err
	}
	defer ca.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.New(st, ca, c.Logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			printError("Server stopped unexpectedly")
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore picks the plan store backend: MongoDB when a URI is given,
// otherwise the local file store.
func (c *CLI) openStore(ctx context.Context, mongoURI, dir string) (store.Store, error) {
	if mongoURI != "" {
		c.Logger.Debug("Using MongoDB plan store")
		return store.NewMongoStore(ctx, mongoURI)
	}
	if dir == "" {
		var err error
		dir, err = dataDir()
		if err != nil {
			return nil, err
		}
	}
	c.Logger.Debugf("Using file plan store at %s", dir)
	return store.NewFileStore(dir)
}

// openCache picks the layout cache backend: Redis when an address is given,
// otherwise the local file cache.
func (c *CLI) openCache(ctx context.Context, redisURL string) (cache.Cache, error) {
	if redisURL != "" {
		c.Logger.Debug("Using Redis layout cache")
		return cache.NewRedisCache(ctx, redisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		printWarning("Layout cache unavailable: %v", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debugf("Using file layout cache at %s", dir)
	return cache.NewFileCache(dir)
}
