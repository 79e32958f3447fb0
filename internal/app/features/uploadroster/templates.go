// internal/app/features/uploadroster/templates.go
package uploadroster

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "uploadroster",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
