package commands

import (
	"github.com/3-lines-studio/lumastay"
	"github.com/3-lines-studio/lumastay/internal/core"
)

// CheckCmd renders the page once without serving it.
type CheckCmd struct {
	AssetsDir string `name:"assets-dir" type:"path" help:"Check against assets in this directory instead of the embedded copy"`
}

func (c *CheckCmd) Run(g *Global, _ *CLI) error {
	assetsDir := g.Config.AssetsDir
	if c.AssetsDir != "" {
		assetsDir = c.AssetsDir
	}

	app, err := lumastay.New(
		lumastay.WithAssetsDir(assetsDir),
		lumastay.WithLogger(g.Logger),
	)
	if err != nil {
		return err
	}
	defer func() { _ = app.Stop() }()

	out := g.Output
	out.PrintHeader("LumaStay page sections")
	for i, s := range app.Summaries() {
		out.PrintStep("%s  %-15s %d", core.Ordinal(i), s.Name, s.Items)
	}
	out.PrintDone("")

	if err := app.Verify(); err != nil {
		out.PrintError("%v", err)
		return err
	}
	out.PrintSuccess("All in-page anchors resolve")
	return nil
}
