package output

import (
	"regexp"
	"sort"
	"strings"
)

// escapedOpen is how Escape writes a literal "<" in a marked up line
const escapedOpen = `\<`

// placeholder stands in for escaped brackets while tags are expanded
const placeholder = "\uE000"

// Escape makes s safe to embed in a marked up line: any tag it contains is
// printed literally instead of being styled or stripped
func Escape(s string) string {
	return strings.ReplaceAll(s, "<", escapedOpen)
}

// Markup expands or strips the inline tags of a fixed tag set
type Markup struct {
	tags     []string
	patterns map[string]*regexp.Regexp
}

// NewMarkup compiles patterns for the given tag names
func NewMarkup(tags []string) *Markup {
	m := &Markup{
		tags:     append([]string(nil), tags...),
		patterns: make(map[string]*regexp.Regexp, len(tags)),
	}
	sort.Strings(m.tags)
	for _, tag := range m.tags {
		m.patterns[tag] = regexp.MustCompile(`<` + regexp.QuoteMeta(tag) + `>(.*?)</` + regexp.QuoteMeta(tag) + `>`)
	}
	return m
}

// Expand replaces each tagged span with the result of render(tag, content).
// Expansion repeats until the line is stable, so nested tags of different
// names are all expanded.
func (m *Markup) Expand(line string, render func(tag, content string) string) string {
	result := strings.ReplaceAll(line, escapedOpen, placeholder)
	for {
		before := result
		for _, tag := range m.tags {
			pattern := m.patterns[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				return render(tag, sub[1])
			})
		}
		if result == before {
			return strings.ReplaceAll(result, placeholder, "<")
		}
	}
}

// Strip removes the tags and keeps their content
func (m *Markup) Strip(line string) string {
	return m.Expand(line, func(_, content string) string { return content })
}
