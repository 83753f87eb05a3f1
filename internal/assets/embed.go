package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:public
var publicFS embed.FS

// Embedded returns the asset tree compiled into the binary, rooted at public/.
func Embedded() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}

// Open returns the on-disk tree at dir, or the embedded tree when dir is empty.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}
