// Package web provides embedded frontend assets for production builds.
package web

import (
	"embed"
	"io/fs"
)

//go:embed dist/assets dist/.vite/manifest.json
var distFS embed.FS

//go:embed views
var viewsFS embed.FS

// ManifestPath is where the embedded Vite manifest lives inside Dist().
const ManifestPath = "dist/.vite/manifest.json"

// Dist returns the embedded build output rooted at the repository layout
// (paths start with "dist/"). The asset loader reads the manifest from it.
func Dist() fs.FS {
	return distFS
}

// Assets returns the hashed asset files with the "dist/assets" prefix
// stripped, ready to serve under the static URL.
func Assets() fs.FS {
	sub, err := fs.Sub(distFS, "dist/assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Views returns the HTML templates.
func Views() fs.FS {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	return sub
}
