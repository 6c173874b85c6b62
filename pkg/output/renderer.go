package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pkgdeps/pkg/logging"
	"github.com/arthur-debert/pkgdeps/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer is a Sink writing styled lines to an io.Writer.
type Renderer struct {
	writer io.Writer
	markup *Markup
	styles map[string]lipgloss.Style
	color  bool
	err    error
}

// NewRenderer creates a Renderer for w using the style configuration cfg.
// A nil cfg selects the embedded styles.
func NewRenderer(w io.Writer, mode ColorMode, cfg *styles.Config) *Renderer {
	log := logging.GetLogger("output.Renderer")

	if cfg == nil {
		cfg = styles.Default()
	}

	r := &Renderer{
		writer: w,
		markup: NewMarkup(cfg.Names()),
		color:  UseColor(mode, w),
	}

	if r.color {
		lr := lipgloss.NewRenderer(w)
		if mode == ColorAlways && lr.ColorProfile() == termenv.Ascii {
			lr.SetColorProfile(termenv.ANSI256)
		}
		r.styles = cfg.Build(lr)
	}

	log.Debug().
		Str("mode", mode.String()).
		Bool("color", r.color).
		Msg("Created line renderer")

	return r
}

// Render returns line with its tags expanded, or stripped without color
func (r *Renderer) Render(line string) string {
	if !r.color {
		return r.markup.Strip(line)
	}
	return r.markup.Expand(line, func(tag, content string) string {
		return r.styles[tag].Render(content)
	})
}

// Writeln renders and writes line. After the first write error further
// lines are dropped.
func (r *Renderer) Writeln(line string) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintln(r.writer, r.Render(line)); err != nil {
		r.err = err
	}
}

// Err returns the first write error
func (r *Renderer) Err() error {
	return r.err
}
