package output

import (
	"github.com/arthur-debert/pkgdeps/pkg/output/styles"
)

// Sink accepts display lines in emission order. Writeln never fails; the
// first write error is kept and reported by Err.
type Sink interface {
	Writeln(line string)
	Err() error
}

// defaultMarkup strips the tags of the embedded style set
var defaultMarkup = NewMarkup(styles.Default().Names())

// StripTags removes the default style tags from line
func StripTags(line string) string {
	return defaultMarkup.Strip(line)
}

// Buffer is a Sink that keeps every line as emitted
type Buffer struct {
	lines []string
}

// NewBuffer creates an empty Buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Writeln records line
func (b *Buffer) Writeln(line string) {
	b.lines = append(b.lines, line)
}

// Err always returns nil
func (b *Buffer) Err() error {
	return nil
}

// Lines returns the recorded lines including their markup
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// PlainLines returns the recorded lines with markup removed
func (b *Buffer) PlainLines() []string {
	plain := make([]string, len(b.lines))
	for i, line := range b.lines {
		plain[i] = StripTags(line)
	}
	return plain
}
