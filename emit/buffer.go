package emit

import (
	"fmt"
	"strings"

	"github.com/quillgen/quill/dialect"
)

// A Buffer is a leaf node of the output tree: an ordered, append-only log of
// fragments. Fragments are never removed or rewritten once appended; the
// only way to "undo" output is to not write it.
//
// Buffers are created with Scope.Leaf and belong to exactly one parent scope
// for their whole lifetime.
type Buffer struct {
	fragments []fragment
}

// Write appends text as a literal fragment.
func (b *Buffer) Write(text string) {
	b.fragments = append(b.fragments, literal(text))
}

// WriteLine appends text followed by a newline.
func (b *Buffer) WriteLine(text string) {
	b.fragments = append(b.fragments, literal(text+"\n"))
}

// Writef appends fmt.Sprintf(format, args...) as a literal fragment.
func (b *Buffer) Writef(format string, args ...any) {
	b.fragments = append(b.fragments, literal(fmt.Sprintf(format, args...)))
}

// WriteSymbol appends a symbolic reference to id. The reference is spelled
// out (bare or alias-qualified) by the Writer's Resolver during Render.
func (b *Buffer) WriteSymbol(id SymbolID) {
	b.fragments = append(b.fragments, symbolRef{id: id})
}

// WriteVariants renders one logical snippet for the given dialects and
// appends the result as a literal. A single dialect collapses to the direct
// snippet text; multiple dialects produce a mapping literal keyed in the
// exact order of variants. See dialect.Emitter.
func (b *Buffer) WriteVariants(e *dialect.Emitter, variants []string, renderOne func(string) string) error {
	r, err := e.Render(variants, renderOne)
	if err != nil {
		return err
	}
	b.fragments = append(b.fragments, literal(r.Expr()))
	return nil
}

// render resolves every fragment in append order into sb.
func (b *Buffer) render(sb *strings.Builder, r *Resolver) error {
	for _, f := range b.fragments {
		text, err := f.resolve(r)
		if err != nil {
			return err
		}
		sb.WriteString(text)
	}
	return nil
}
