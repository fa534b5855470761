// Package headerbar renders the title line above the grid.
package headerbar

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/photogrid/internal/ui/render"
	"github.com/llehouerou/photogrid/internal/ui/styles"
)

// Height is the title line plus its separator.
const Height = 2

const title = "photogrid"

// State is what the header shows besides the title.
type State struct {
	Spinner  string // current spinner frame, shown while searches run
	Pending  int    // searches in flight
	Sections int
	Photos   int
}

// Render returns the two header lines for the given width.
func Render(width int, s State) string {
	if width <= 0 {
		return "\n"
	}
	t := styles.T()

	left := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)
	if s.Pending > 0 {
		activity := fmt.Sprintf("%s searching %s…", s.Spinner, english.Plural(s.Pending, "term", ""))
		left += "  " + t.S().Muted.Render(activity)
	}

	var right string
	if s.Sections > 0 {
		right = t.S().Subtle.Render(fmt.Sprintf("%s · %s",
			english.Plural(s.Sections, "search", "searches"),
			humanize.Comma(int64(s.Photos))+" "+english.PluralWord(s.Photos, "photo", "")))
	}

	line := render.Row(left, right, width)
	sep := t.S().Subtle.Render(render.Rule("─", width))
	return line + "\n" + sep
}
