// internal/app/resources/resources.go
//
// Embedded site-wide resources: the shared layout templates every page
// builds on, and the compiled CSS/JS bundle.
package resources

import (
	"embed"
	"io/fs"
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var sharedFS embed.FS

//go:embed assets/css/*.css assets/js/*.js
var assetsFS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the layout and nav templates with the
// template engine. Call before templates.Boot; safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       sharedFS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}

// Assets returns the embedded asset tree rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic("resources: assets subtree missing: " + err.Error())
	}
	return sub
}

// AssetsHandler serves the embedded assets under the given URL prefix,
// e.g. AssetsHandler("/assets") maps /assets/css/site.css to css/site.css.
func AssetsHandler(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.FS(Assets())))
}
