// Package patterns assembles the built-in pattern catalogue: one file per
// (group, provider), modeled on the original implementation's vet_providers
// crate. Each provider contributes a small, reviewed set of pattern.Spec
// values; Builtin() flattens them into the list New callers pass to
// pattern.New + pattern.Registry.
package patterns

import (
	"github.com/vet-dev/vet/internal/domain/pattern"
	"github.com/vet-dev/vet/internal/patterns/ai"
	"github.com/vet-dev/vet/internal/patterns/auth"
	"github.com/vet-dev/vet/internal/patterns/cloud"
	"github.com/vet-dev/vet/internal/patterns/database"
	"github.com/vet-dev/vet/internal/patterns/email"
	"github.com/vet-dev/vet/internal/patterns/generic"
	"github.com/vet-dev/vet/internal/patterns/infra"
	"github.com/vet-dev/vet/internal/patterns/keys"
	"github.com/vet-dev/vet/internal/patterns/messaging"
	"github.com/vet-dev/vet/internal/patterns/packages"
	"github.com/vet-dev/vet/internal/patterns/payments"
	"github.com/vet-dev/vet/internal/patterns/seeded"
	"github.com/vet-dev/vet/internal/patterns/vcs"
)

// Specs returns every built-in pattern.Spec, across all providers.
func Specs() []pattern.Spec {
	var all []pattern.Spec
	all = append(all, ai.Specs()...)
	all = append(all, auth.Specs()...)
	all = append(all, cloud.Specs()...)
	all = append(all, database.Specs()...)
	all = append(all, email.Specs()...)
	all = append(all, generic.Specs()...)
	all = append(all, infra.Specs()...)
	all = append(all, keys.Specs()...)
	all = append(all, messaging.Specs()...)
	all = append(all, packages.Specs()...)
	all = append(all, payments.Specs()...)
	all = append(all, vcs.Specs()...)
	all = append(all, seeded.Specs()...)
	return all
}

// Builtin compiles every built-in spec into Patterns. A malformed built-in
// regex is a programmer error, so Builtin panics rather than returning an
// error a caller could silently ignore; custom `.vet.toml` patterns go
// through pattern.New directly and return their error normally.
func Builtin() []*pattern.Pattern {
	specs := Specs()
	out := make([]*pattern.Pattern, 0, len(specs))
	for _, spec := range specs {
		p, err := pattern.New(spec)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	return out
}
