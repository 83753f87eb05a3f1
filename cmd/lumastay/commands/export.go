package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/3-lines-studio/lumastay"
	"github.com/3-lines-studio/lumastay/internal/adapters/cli"
)

type ExportCmd struct {
	Output    string `short:"o" name:"output" type:"path" help:"Output directory (overrides export.output_dir)"`
	Clean     bool   `name:"clean" xor:"clean" help:"Empty the output directory first"`
	NoClean   bool   `name:"no-clean" xor:"clean" help:"Keep existing files in the output directory"`
	AssetsDir string `name:"assets-dir" type:"path" help:"Export assets from this directory instead of the embedded copy"`
}

func (e *ExportCmd) Run(g *Global, _ *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return e.export(ctx, g)
}

func (e *ExportCmd) export(ctx context.Context, g *Global) error {
	cfg := g.Config
	outDir := cfg.Export.OutputDir
	if e.Output != "" {
		outDir = e.Output
	}
	clean := cfg.Export.Clean
	switch {
	case e.Clean:
		clean = true
	case e.NoClean:
		clean = false
	}
	assetsDir := cfg.AssetsDir
	if e.AssetsDir != "" {
		assetsDir = e.AssetsDir
	}

	app, err := lumastay.New(
		lumastay.WithAssetsDir(assetsDir),
		lumastay.WithLogger(g.Logger),
	)
	if err != nil {
		return err
	}
	defer func() { _ = app.Stop() }()

	g.Output.PrintHeader("Exporting LumaStay to " + outDir)
	report := cli.NewExportReport(g.Output, outDir)
	_, err = app.ExportWithProgress(ctx, outDir, clean, report)
	report.Render()
	if err != nil {
		return err
	}
	g.Logger.Debug("Export finished", "output", outDir, "clean", clean)
	return nil
}
