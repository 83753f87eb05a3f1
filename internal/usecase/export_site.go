package usecase

import (
	"bytes"
	"context"
	"fmt"
	iofs "io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/3-lines-studio/lumastay/internal/core"
	"github.com/3-lines-studio/lumastay/internal/linkcheck"
	"github.com/3-lines-studio/lumastay/internal/metrics"
)

const IndexFile = "index.html"

type ExportInput struct {
	OutputDir string
	Clean     bool
	Progress  ExportProgress
}

type ExportOutput struct {
	Files []string
	Error error
}

type ExportService struct {
	pages    *PageService
	fs       FileSystem
	recorder metrics.Recorder
}

func NewExportService(pages *PageService, fs FileSystem, recorder metrics.Recorder) *ExportService {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &ExportService{
		pages:    pages,
		fs:       fs,
		recorder: recorder,
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	out := s.export(ctx, input)
	s.recorder.IncExport(out.Error == nil)
	return out
}

func (s *ExportService) export(ctx context.Context, input ExportInput) ExportOutput {
	progress := input.Progress
	if progress == nil {
		progress = noProgress{}
	}
	if strings.TrimSpace(input.OutputDir) == "" {
		return ExportOutput{Error: fmt.Errorf("export: output directory is required")}
	}
	outDir := filepath.Clean(input.OutputDir)

	step := progress.StartStep("Render page")
	var html bytes.Buffer
	err := s.pages.RenderDocument(&html, false)
	progress.EndStep(step, err)
	if err != nil {
		return ExportOutput{Error: err}
	}

	step = progress.StartStep("Verify anchors")
	err = VerifyAnchors(html.Bytes())
	progress.EndStep(step, err)
	if err != nil {
		return ExportOutput{Error: err}
	}

	// Read assets before cleaning: the asset directory may sit inside outDir.
	step = progress.StartStep("Read assets")
	files, err := s.readAssets(ctx)
	progress.EndStep(step, err)
	if err != nil {
		return ExportOutput{Error: err}
	}

	if input.Clean {
		step = progress.StartStep("Clean output directory")
		err = s.fs.RemoveAll(outDir)
		progress.EndStep(step, err)
		if err != nil {
			return ExportOutput{Error: fmt.Errorf("clean %s: %w", outDir, err)}
		}
	} else if indexPath := filepath.Join(outDir, IndexFile); s.fs.FileExists(indexPath) {
		progress.AddWarning("Overwriting existing " + indexPath)
	}

	step = progress.StartStep("Write files")
	written, err := s.writeFiles(ctx, outDir, html.Bytes(), files)
	progress.EndStep(step, err)
	progress.AddFiles(written...)
	return ExportOutput{Files: written, Error: err}
}

type assetFile struct {
	rel  string // slash-separated, relative to the output directory
	data []byte
}

func (s *ExportService) readAssets(ctx context.Context) ([]assetFile, error) {
	assetsFS := s.pages.assets.FS()
	prefix := strings.Trim(core.AssetPrefix, "/")

	var files []assetFile
	err := iofs.WalkDir(assetsFS, ".", func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := iofs.ReadFile(assetsFS, name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		files = append(files, assetFile{rel: path.Join(prefix, name), data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read assets: %w", err)
	}
	return files, nil
}

func (s *ExportService) writeFiles(ctx context.Context, outDir string, html []byte, assets []assetFile) ([]string, error) {
	if err := s.fs.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	indexPath := filepath.Join(outDir, IndexFile)
	if err := s.fs.WriteFile(indexPath, html, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", indexPath, err)
	}
	files := []string{IndexFile}

	for _, a := range assets {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		dest := filepath.Join(outDir, filepath.FromSlash(a.rel))
		if err := s.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return files, fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
		}
		if err := s.fs.WriteFile(dest, a.data, 0o644); err != nil {
			return files, fmt.Errorf("write %s: %w", dest, err)
		}
		files = append(files, a.rel)
	}
	return files, nil
}

// VerifyAnchors fails when an in-page link has no matching id.
func VerifyAnchors(html []byte) error {
	report, err := linkcheck.Verify(bytes.NewReader(html))
	if err != nil {
		return err
	}
	return report.Err()
}
