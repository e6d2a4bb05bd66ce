package olxgui

import (
	"embed"
	"io/fs"
)

//go:embed definitions/*.yaml
var embeddedDefinitions embed.FS

// Definitions exposes the page definitions shipped with the module, so the
// stock pages can be rendered without a checkout of the GUI sources.
func Definitions() fs.FS {
	sub, err := fs.Sub(embeddedDefinitions, "definitions")
	if err != nil {
		return embeddedDefinitions
	}
	return sub
}
