package lumastay

import (
	"context"

	"github.com/3-lines-studio/lumastay/internal/usecase"
)

// ExportProgress receives export steps as they run.
type ExportProgress = usecase.ExportProgress

// Export writes index.html and the asset tree into dir and returns the
// written paths relative to dir. With clean set, dir is emptied first.
func (a *App) Export(ctx context.Context, dir string, clean bool) ([]string, error) {
	return a.ExportWithProgress(ctx, dir, clean, nil)
}

func (a *App) ExportWithProgress(ctx context.Context, dir string, clean bool, progress ExportProgress) ([]string, error) {
	out := a.exports.Export(ctx, usecase.ExportInput{
		OutputDir: dir,
		Clean:     clean,
		Progress:  progress,
	})
	return out.Files, out.Error
}
