// Package stylekey canonicalises style requests into cache keys.
//
// The whole idempotent-styling guarantee of the framework rests on this
// encoding being injective: two requests that differ in any semantic field
// must never serialise to the same key, and two requests with identical
// fields must serialise identically regardless of how their extras were
// assembled.
package stylekey

import (
	"sort"
	"strings"
)

// Request is the structured input to Build. Category names the widget
// family ("text", "container", "input", "control"), Variant the family
// specific variant, and Extras every remaining resolved parameter as
// name/value pairs. Requests are transient; they are built per resolution
// and never stored.
type Request struct {
	Category string
	Variant  string
	Extras   map[string]string
}

// Key is a canonical string uniquely determined by a Request's fields.
type Key string

const (
	segmentSep = ';'
	pairSep    = '='
	escapeChar = '\\'
)

// Build serialises a Request into its canonical Key. It is a total
// function: every syntactically valid request yields a key, and there is no
// failure mode here. Semantic validation (unknown roles, shades, tokens)
// belongs to the resolvers, which run before any key is built.
//
// Layout: escaped category, escaped variant, then each extras pair as
// key=value with keys sorted lexicographically, all joined by ';'. The
// separator, pair and escape characters are escaped inside every field, so
// no two distinct field assignments can collide.
func Build(req Request) Key {
	var b strings.Builder

	writeEscaped(&b, req.Category)
	b.WriteByte(segmentSep)
	writeEscaped(&b, req.Variant)

	if len(req.Extras) == 0 {
		return Key(b.String())
	}

	names := make([]string, 0, len(req.Extras))
	for name := range req.Extras {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteByte(segmentSep)
		writeEscaped(&b, name)
		b.WriteByte(pairSep)
		writeEscaped(&b, req.Extras[name])
	}

	return Key(b.String())
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == segmentSep || c == pairSep || c == escapeChar {
			b.WriteByte(escapeChar)
		}
		b.WriteByte(c)
	}
}
