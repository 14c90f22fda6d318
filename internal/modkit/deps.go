// Package modkit provides module wiring and the dependencies shared by API modules
package modkit

import (
	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/modkit/repokit"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/store"
)

// Deps holds core dependencies passed to modules.
// PG, CH and the three capability ports are nil when the backing service is not configured
type Deps struct {
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse

	Lex  *lexicon.Lexicon
	Caps *capability.Registry
	Pool *capability.Pool

	Embedder    capability.Embedder
	Generator   capability.Generator
	Transcriber capability.Transcriber
}

// Lexicon returns the configured tables or the embedded defaults
func (d Deps) Lexicon() *lexicon.Lexicon {
	if d.Lex != nil {
		return d.Lex
	}
	return lexicon.MustLoad()
}

// Capabilities returns the configured registry, creating an empty one for tests
func (d Deps) Capabilities() *capability.Registry {
	if d.Caps != nil {
		return d.Caps
	}
	return capability.NewRegistry(capability.Embedding, capability.Generation)
}
