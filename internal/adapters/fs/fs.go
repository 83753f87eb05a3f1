package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	RemoveAll(path string) error
	FileExists(path string) bool
}
