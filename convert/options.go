package convert

import (
	"fmt"

	skemora "github.com/skemora/skemora"
)

// Options controls compilation of JSON Schema documents.
type Options struct {
	// Unknown decides how compiled object schemas treat keys that are not
	// declared in properties. Default is UnknownStrict (reject).
	Unknown skemora.UnknownPolicy
}

// Diag carries non-fatal warnings produced during compilation.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
