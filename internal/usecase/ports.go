package usecase

import (
	iofs "io/fs"

	"github.com/3-lines-studio/lumastay/internal/adapters/fs"
)

// Assets is what page rendering and export need from the asset tree.
type Assets interface {
	FS() iofs.FS
	ImageURL(name string) string
	StylesheetURL() string
}

// ExportProgress receives export steps as they run. cli.ExportReport
// implements it.
type ExportProgress interface {
	StartStep(name string) int
	EndStep(step int, err error)
	AddWarning(msg string)
	AddFiles(paths ...string)
}

type FileSystem = fs.FileSystem

type noProgress struct{}

func (noProgress) StartStep(string) int { return 0 }
func (noProgress) EndStep(int, error)   {}
func (noProgress) AddWarning(string)    {}
func (noProgress) AddFiles(...string)   {}
