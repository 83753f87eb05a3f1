package commands

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*kong.Context, *CLI) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("lumastay"), kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx, &cli
}

func newTestGlobal(t *testing.T, cli *CLI) (*Global, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	g, err := NewGlobal(cli, &out, io.Discard)
	require.NoError(t, err)
	return g, &out
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "lumastay.yaml")
}

func TestParseDefaults(t *testing.T) {
	ctx, cli := parse(t, "serve")
	assert.Equal(t, "serve", ctx.Command())
	assert.Equal(t, "lumastay.yaml", cli.Config)
	assert.Empty(t, cli.Serve.Addr)
	assert.False(t, cli.Serve.Dev)
}

func TestParseRejectsCleanAndNoClean(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse([]string{"export", "--clean", "--no-clean"})
	assert.Error(t, err)
}

func TestNewGlobalRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := NewGlobal(&CLI{Config: path}, io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	ctx, cli := parse(t, "-c", missingConfig(t), "check")
	g, out := newTestGlobal(t, cli)

	require.NoError(t, ctx.Run(g, cli))

	text := out.String()
	for _, want := range []string{
		"LumaStay page sections",
		"01  hero",
		"02  journey",
		"07  footer",
		"All in-page anchors resolve",
	} {
		assert.Contains(t, text, want)
	}
	assert.Less(t, strings.Index(text, "hero"), strings.Index(text, "call-to-action"))
}

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	ctx, cli := parse(t, "-c", missingConfig(t), "export", "-o", dir)
	g, out := newTestGlobal(t, cli)

	require.NoError(t, ctx.Run(g, cli))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "LumaStay Concierge AI")
	_, err = os.Stat(filepath.Join(dir, "assets", "styles", "site.css"))
	assert.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Exporting LumaStay to "+dir)
	assert.Contains(t, text, "Export complete")
	assert.Contains(t, text, "index.html")
}

func TestExportNoCleanKeepsFiles(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "CNAME")
	require.NoError(t, os.WriteFile(keep, []byte("lumastay.example.com"), 0o644))

	ctx, cli := parse(t, "-c", missingConfig(t), "export", "-o", dir, "--no-clean")
	g, _ := newTestGlobal(t, cli)
	require.NoError(t, ctx.Run(g, cli))

	_, err := os.Stat(keep)
	assert.NoError(t, err)
}

func TestExportNoCleanWarnsOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	export := func() string {
		ctx, cli := parse(t, "--no-color", "-c", missingConfig(t), "export", "-o", dir, "--no-clean")
		g, out := newTestGlobal(t, cli)
		require.NoError(t, ctx.Run(g, cli))
		return out.String()
	}

	first := export()
	assert.NotContains(t, first, "Overwriting existing")

	second := export()
	assert.Contains(t, second, "⚠ Overwriting existing "+filepath.Join(dir, "index.html"))
	assert.Contains(t, second, "Export complete")
}

func TestNoColorFlag(t *testing.T) {
	_, cli := parse(t, "--no-color", "check")
	assert.True(t, cli.NoColor)

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	defer devNull.Close()

	cli.Config = missingConfig(t)
	g, err := NewGlobal(cli, devNull, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "ok", g.Output.Green("ok"))
}

func TestServeCommand(t *testing.T) {
	_, cli := parse(t, "-c", missingConfig(t), "serve", "--addr", "127.0.0.1:0")
	g, _ := newTestGlobal(t, cli)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- cli.Serve.serve(ctx, g, ready) }()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
