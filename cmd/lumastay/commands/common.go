// Package commands implements the lumastay CLI subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/3-lines-studio/lumastay"
	"github.com/3-lines-studio/lumastay/internal/adapters/cli"
	"github.com/3-lines-studio/lumastay/internal/config"
)

// Global carries what every subcommand needs once flags are parsed.
type Global struct {
	Config *config.Config
	Logger *slog.Logger
	Output *cli.Output
}

type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"lumastay.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	NoColor bool             `name:"no-color" help:"Disable colored output"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve  ServeCmd  `cmd:"" help:"Serve the microsite over HTTP"`
	Export ExportCmd `cmd:"" help:"Write the microsite as a static site"`
	Check  CheckCmd  `cmd:"" help:"Render the page, verify anchors, and list sections"`
}

// NewGlobal loads configuration and sets the default logger. Logs go to
// logOut so they never mix with command output on out. Command output is
// colored when out is a terminal, unless NoColor is set.
func NewGlobal(c *CLI, out, logOut io.Writer) (*Global, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logging.NewLogger(logOut, c.Verbose)
	slog.SetDefault(logger)

	output := cli.NewWriterOutput(out)
	if c.NoColor {
		output.DisableColors()
	}
	return &Global{
		Config: cfg,
		Logger: logger,
		Output: output,
	}, nil
}

func appOptions(g *Global, dev bool, assetsDir string) []lumastay.Option {
	opts := []lumastay.Option{
		lumastay.WithDev(dev),
		lumastay.WithAssetsDir(assetsDir),
		lumastay.WithLogger(g.Logger),
	}
	if g.Config.Server.Metrics.Enabled {
		opts = append(opts, lumastay.WithMetrics(g.Config.Server.Metrics.Path))
	}
	return opts
}
