// Package fillers detects filler words and phrases in a transcript.
// Matching runs on normalized text so case, width and zero-width tricks
// do not hide a filler, and a match must sit on word boundaries at both ends
package fillers

import (
	"sort"

	"interviewcoach/internal/core/normalize"
)

// Detector is immutable after New and safe for concurrent use
type Detector struct {
	norm  *normalize.Normalizer
	ac    *automaton
	terms []string
}

// New compiles a detector for the given terms. Terms are normalized the same
// way as input text; blanks and duplicates are dropped
func New(terms []string) *Detector {
	d := &Detector{norm: normalize.New(), ac: newAutomaton()}
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		nt := d.norm.Normalize(t)
		if nt == "" {
			continue
		}
		if _, dup := seen[nt]; dup {
			continue
		}
		seen[nt] = struct{}{}
		d.ac.add(nt, len(d.terms))
		d.terms = append(d.terms, nt)
	}
	d.ac.build()
	return d
}

// Terms returns the compiled lexicon in insertion order
func (d *Detector) Terms() []string {
	out := make([]string, len(d.terms))
	copy(out, d.terms)
	return out
}

type match struct {
	start, end, id int
}

// Detect returns every filler occurrence in text order and their count.
// Overlapping candidates resolve leftmost first, then longest
func (d *Detector) Detect(text string) ([]string, int) {
	if d == nil || len(d.terms) == 0 {
		return []string{}, 0
	}
	s := d.norm.Normalize(text)
	if s == "" {
		return []string{}, 0
	}

	var cands []match
	d.ac.scan(s, func(start, end, id int) {
		if onBoundary(s, start, end) {
			cands = append(cands, match{start: start, end: end, id: id})
		}
	})
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		return cands[i].end > cands[j].end
	})

	out := make([]string, 0, len(cands))
	lastEnd := 0
	for _, m := range cands {
		if m.start < lastEnd {
			continue
		}
		out = append(out, d.terms[m.id])
		lastEnd = m.end
	}
	return out, len(out)
}

// Distinct returns the sorted set of terms in occurrences
func Distinct(occurrences []string) []string {
	seen := make(map[string]struct{}, len(occurrences))
	out := make([]string, 0, len(occurrences))
	for _, o := range occurrences {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	sort.Strings(out)
	return out
}
