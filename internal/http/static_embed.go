package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/dashboard.html
var staticFS embed.FS

func dashboardFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
