package components

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// StaticAssets returns the stylesheet and other files served under /static/.
func StaticAssets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
