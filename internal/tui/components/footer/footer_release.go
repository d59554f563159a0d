//go:build release

package footer

import "github.com/garrettladley/earth/internal/version"

func (f Footer) rightContent() string {
	return hintStyle.Render("v" + version.Get())
}
