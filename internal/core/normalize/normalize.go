// Package normalize provides a deterministic text normalizer for transcripts
// Pipeline order
// 1 Sanitize control characters and drop invalid UTF-8
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove combining marks and format characters (zero-widths)
// 5 Width fold fullwidth to ASCII
// 6 Fold typographic quotes to ASCII quotes
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use
type Normalizer struct{}

// transform chains carry state so each goroutine borrows its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

var quoteFold = strings.NewReplacer(
	"‘", "'", "’", "'", "‛", "'", "′", "'",
	"“", `"`, "”", `"`, "‟", `"`,
)

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the lowercased canonical form of s used for lexicon matching
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// fall back to a plain lowercase so matching still works on odd input
		ns = strings.ToLower(s)
	}

	return collapseSpaces(quoteFold.Replace(ns))
}

// collapseSpaces converts any whitespace run to one ASCII space and trims the edges
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
