// Package asciidoc holds the grammar of the supported AsciiDoc subset
// and the generated binding of its structural rules.
package asciidoc

import (
	_ "embed"
	"sync"

	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/langdef"
)

//go:generate go run ../../cmd/adocgen -p asciidoc -o actions_gen.go asciidoc.peg

// SourceName is the name of embedded grammar description.
const SourceName = "asciidoc.peg"

//go:embed asciidoc.peg
var description []byte

var (
	loadOnce sync.Once
	loaded   *grammar.Grammar
	loadErr  error
)

// Description returns grammar description text.
func Description() []byte {
	return description
}

// Load parses embedded grammar description once and returns the result.
// Returned grammar is shared and must not be modified.
func Load() (*grammar.Grammar, error) {
	loadOnce.Do(func() {
		loaded, loadErr = langdef.ParseBytes(SourceName, description)
	})
	return loaded, loadErr
}
