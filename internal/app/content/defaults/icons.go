// internal/app/content/defaults/icons.go
package defaults

// DefaultIcon is used when an editor typed an icon name the site does
// not ship. The grid always renders something.
const DefaultIcon = "shield"

// knownIcons are the icon names the stylesheet carries glyphs for.
var knownIcons = map[string]struct{}{
	"shield":    {},
	"clipboard": {},
	"refresh":   {},
	"lock":      {},
	"chart":     {},
	"globe":     {},
	"handshake": {},
	"document":  {},
	"search":    {},
	"bell":      {},
}

// ResolveIcon maps an icon name to a known one, falling back to
// DefaultIcon for empty or unrecognized names.
func ResolveIcon(name string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return DefaultIcon
}
