// Package lexicon loads the embedded word tables used for scoring and question templates.
// Domain keyed tables are typed and validated at load so lookups never miss
package lexicon

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicons.yaml
var embedded []byte

// Domain identifies an interview domain such as software or data_science
type Domain string

// Known domains; General is the mandatory fallback entry of every table
const (
	Software    Domain = "software"
	DataScience Domain = "data_science"
	Electronics Domain = "electronics"
	General     Domain = "general"
)

// Level is the candidate experience level
type Level string

// Known experience levels
const (
	Fresher      Level = "fresher"
	Intermediate Level = "intermediate"
	Senior       Level = "senior"
)

// NormalizeDomain lowercases and trims a caller supplied domain
// unknown values are kept so feedback text can echo them, lookups fall back to General
func NormalizeDomain(s string) Domain {
	d := strings.ToLower(strings.TrimSpace(s))
	if d == "" {
		return General
	}
	return Domain(d)
}

// NormalizeLevel lowercases and trims a level, defaulting to Fresher
func NormalizeLevel(s string) Level {
	l := strings.ToLower(strings.TrimSpace(s))
	if l == "" {
		return Fresher
	}
	return Level(l)
}

// Table maps a domain to a value with a guaranteed General entry
type Table[T any] map[Domain]T

// Lookup returns the entry for d or the General entry when d is unknown
func (t Table[T]) Lookup(d Domain) T {
	if v, ok := t[d]; ok {
		return v
	}
	return t[General]
}

// Has reports whether d has its own entry
func (t Table[T]) Has(d Domain) bool {
	_, ok := t[d]
	return ok
}

// Tone holds substring lexicons used by the tone heuristic
type Tone struct {
	Positive     []string `yaml:"positive"`
	Hedging      []string `yaml:"hedging"`
	Professional []string `yaml:"professional"`
}

// DomainInfo is the public metadata of a domain
type DomainInfo struct {
	ID          Domain `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type rawDomain struct {
	ID          string              `yaml:"id"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Keywords    []string            `yaml:"keywords"`
	Concepts    []string            `yaml:"concepts"`
	Questions   map[string][]string `yaml:"questions"`
}

type rawLexicon struct {
	Version   int         `yaml:"version"`
	Fillers   []string    `yaml:"fillers"`
	Tone      Tone        `yaml:"tone"`
	FollowUps []string    `yaml:"follow_ups"`
	Domains   []rawDomain `yaml:"domains"`
}

// Lexicon is the compiled set of tables
type Lexicon struct {
	Version   int
	Fillers   []string
	Tone      Tone
	FollowUps []string

	Domains   []DomainInfo
	Keywords  Table[[]string]
	Concepts  Table[[]string]
	Questions Table[map[Level][]string]
}

var (
	defOnce sync.Once
	defLex  *Lexicon
	defErr  error
)

// Load parses and validates the embedded tables once and returns the shared result
func Load() (*Lexicon, error) {
	defOnce.Do(func() {
		defLex, defErr = Parse(embedded)
	})
	return defLex, defErr
}

// MustLoad is Load for process start where a bad table is fatal
func MustLoad() *Lexicon {
	lx, err := Load()
	if err != nil {
		panic("lexicon: " + err.Error())
	}
	return lx
}

// Parse builds a Lexicon from YAML bytes and validates it
func Parse(b []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lx := &Lexicon{
		Version:   raw.Version,
		Fillers:   lowerAll(raw.Fillers),
		Tone:      Tone{Positive: lowerAll(raw.Tone.Positive), Hedging: lowerAll(raw.Tone.Hedging), Professional: lowerAll(raw.Tone.Professional)},
		FollowUps: trimAll(raw.FollowUps),
		Keywords:  Table[[]string]{},
		Concepts:  Table[[]string]{},
		Questions: Table[map[Level][]string]{},
	}

	for _, rd := range raw.Domains {
		id := NormalizeDomain(rd.ID)
		if strings.TrimSpace(rd.ID) == "" {
			return nil, fmt.Errorf("domain entry without id")
		}
		if lx.Keywords.Has(id) {
			return nil, fmt.Errorf("duplicate domain %q", id)
		}
		lx.Domains = append(lx.Domains, DomainInfo{ID: id, Name: rd.Name, Description: rd.Description})
		lx.Keywords[id] = lowerAll(rd.Keywords)
		lx.Concepts[id] = trimAll(rd.Concepts)

		qs := make(map[Level][]string, len(rd.Questions))
		for lvl, pool := range rd.Questions {
			qs[NormalizeLevel(lvl)] = trimAll(pool)
		}
		lx.Questions[id] = qs
	}

	if err := lx.Validate(); err != nil {
		return nil, err
	}
	return lx, nil
}

// Validate checks the invariants every consumer relies on
func (lx *Lexicon) Validate() error {
	if len(lx.Fillers) == 0 {
		return fmt.Errorf("filler lexicon is empty")
	}
	if len(lx.Tone.Positive) == 0 || len(lx.Tone.Hedging) == 0 || len(lx.Tone.Professional) == 0 {
		return fmt.Errorf("tone lexicon is incomplete")
	}
	if !lx.Keywords.Has(General) {
		return fmt.Errorf("keywords table has no %q entry", General)
	}
	if !lx.Concepts.Has(General) {
		return fmt.Errorf("concepts table has no %q entry", General)
	}
	if !lx.Questions.Has(General) || len(lx.Questions[General][Fresher]) == 0 {
		return fmt.Errorf("questions table has no %q/%q pool", General, Fresher)
	}
	for _, d := range lx.Domains {
		if len(lx.Keywords[d.ID]) == 0 {
			return fmt.Errorf("domain %q has no keywords", d.ID)
		}
		if len(lx.Concepts[d.ID]) == 0 {
			return fmt.Errorf("domain %q has no concepts", d.ID)
		}
	}
	return nil
}

// QuestionPool returns the template pool for a domain and level
// an unknown domain uses general and a missing level uses general fresher
func (lx *Lexicon) QuestionPool(d Domain, lvl Level) []string {
	byLevel := lx.Questions.Lookup(d)
	if pool, ok := byLevel[lvl]; ok && len(pool) > 0 {
		return pool
	}
	return lx.Questions[General][Fresher]
}

// Domain returns metadata for d when it is a known domain
func (lx *Lexicon) Domain(d Domain) (DomainInfo, bool) {
	for _, info := range lx.Domains {
		if info.ID == d {
			return info, true
		}
	}
	return DomainInfo{}, false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.ToLower(strings.TrimSpace(s)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
