package dialect

import (
	"errors"
	"strings"
)

// ErrNoVariants is returned when a snippet is rendered with an empty
// dialect list. At least one target dialect must be configured.
var ErrNoVariants = errors.New("quill: snippet rendered with no dialects")

// An Emitter renders one logical snippet into its embedded textual form.
// The zero value embeds dialect names as map keys verbatim and snippet text
// as-is; both can be adjusted for the target language's literal syntax.
type Emitter struct {
	// FormatKey maps a dialect name to the key expression used in a
	// variant map literal. Nil means the dialect name itself.
	FormatKey func(name string) string
	// QuoteValue wraps each rendered snippet, e.g. as a target-language
	// string literal. Nil means the snippet text is embedded verbatim.
	QuoteValue func(text string) string
}

// Rendered is the result of rendering a snippet: either a Direct literal
// (single dialect) or a VariantMap (several dialects). Expr returns the
// text to embed in the output.
type Rendered interface {
	Expr() string
}

// Direct is a single-dialect snippet, embedded as-is.
type Direct string

// Expr returns the snippet text.
func (d Direct) Expr() string {
	return string(d)
}

// Entry is one dialect's snippet inside a VariantMap.
type Entry struct {
	Key  string
	Text string
}

// VariantMap is a multi-dialect snippet: a mapping literal with one entry
// per dialect, in the exact order the dialects were supplied.
type VariantMap struct {
	Entries []Entry
}

// Expr returns the mapping-literal expression.
func (m VariantMap) Expr() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m.Entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Key)
		sb.WriteString(": ")
		sb.WriteString(e.Text)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Render renders one logical snippet for the given dialects. renderOne is
// invoked once per dialect, in the order given; with exactly one dialect
// the result is a Direct literal, never a one-entry map. Rendering the same
// dialects with the same renderOne yields byte-identical output.
func (e *Emitter) Render(variants []string, renderOne func(string) string) (Rendered, error) {
	switch len(variants) {
	case 0:
		return nil, ErrNoVariants
	case 1:
		return Direct(e.quote(renderOne(variants[0]))), nil
	}
	m := VariantMap{Entries: make([]Entry, 0, len(variants))}
	for _, v := range variants {
		m.Entries = append(m.Entries, Entry{
			Key:  e.key(v),
			Text: e.quote(renderOne(v)),
		})
	}
	return m, nil
}

func (e *Emitter) key(name string) string {
	if e.FormatKey != nil {
		return e.FormatKey(name)
	}
	return name
}

func (e *Emitter) quote(text string) string {
	if e.QuoteValue != nil {
		return e.QuoteValue(text)
	}
	return text
}
