package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/3-lines-studio/lumastay"
	lhttp "github.com/3-lines-studio/lumastay/internal/adapters/http"
)

// ServeCmd runs the HTTP server until SIGINT or SIGTERM.
type ServeCmd struct {
	Addr      string `name:"addr" help:"Listen address (overrides server.addr)"`
	Dev       bool   `name:"dev" help:"Development mode: no caching, live reload, error details"`
	AssetsDir string `name:"assets-dir" type:"path" help:"Serve assets from this directory instead of the embedded copy"`
}

func (s *ServeCmd) Run(g *Global, _ *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return s.serve(ctx, g, nil)
}

// serve reports the bound address on ready once the server is accepting.
func (s *ServeCmd) serve(ctx context.Context, g *Global, ready chan<- string) error {
	cfg := g.Config
	addr := cfg.Server.Addr
	if s.Addr != "" {
		addr = s.Addr
	}
	dev := cfg.Dev || s.Dev
	assetsDir := cfg.AssetsDir
	if s.AssetsDir != "" {
		assetsDir = s.AssetsDir
	}

	app, err := lumastay.New(appOptions(g, dev, assetsDir)...)
	if err != nil {
		return err
	}
	defer func() { _ = app.Stop() }()

	if err := app.Verify(); err != nil {
		return fmt.Errorf("verify page: %w", err)
	}

	srv, err := lhttp.Listen(ctx, addr, app.Handler(), g.Logger)
	if err != nil {
		return err
	}
	srv.Start()
	g.Logger.Info("Serving LumaStay",
		"addr", srv.Addr(),
		"dev", dev,
		"assets_dir", assetsDir,
		"metrics", cfg.Server.Metrics.Enabled)
	if ready != nil {
		ready <- srv.Addr()
	}

	select {
	case <-ctx.Done():
	case err := <-srv.Wait():
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
