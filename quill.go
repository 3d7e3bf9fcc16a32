// Package quill is a scoped code-emission engine for schema code
// generators.
//
// An upstream analysis phase parses declarations, resolves imports, infers
// types and hands quill a finished schema.Model. Quill's job is the hard
// tail of that pipeline: turning the model into deterministic,
// byte-stable source text. The emit package is the core engine (nested
// output scopes, deferred symbolic references, per-scope name collision
// tracking), the dialect package renders per-dialect snippet variants, and
// compiler/gen drives both to produce output units.
//
// Typical use:
//
//	err := quill.Generate(ctx, model,
//		gen.WithTarget("internal/db"),
//		gen.WithDialects(dialect.SQLite, dialect.Postgres),
//		gen.WithCompanions(true),
//		gen.WithDataClasses(true),
//	)
package quill

import (
	"context"

	"github.com/quillgen/quill/compiler/gen"
	"github.com/quillgen/quill/schema"
)

// Generate runs one generation pass over model with the given options and
// writes the rendered units below the configured target directory.
func Generate(ctx context.Context, model *schema.Model, opts ...gen.Option) error {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	return gen.NewGenerator(model, cfg).Generate(ctx)
}
