package emit

import "strings"

// A Writer owns the output tree for one generation unit: the root scope plus
// two distinguished buffers, header and imports, created eagerly as the
// root's first two children. Whatever else is added to the root afterward,
// header content renders first and imports content second.
//
// A Writer is built up incrementally, rendered once, and discarded.
type Writer struct {
	resolver *Resolver
	root     *Scope
	header   *Buffer
	imports  *Buffer
}

// NewWriter returns a Writer whose symbolic references resolve through r.
func NewWriter(r *Resolver) *Writer {
	root := newScope(nil)
	return &Writer{
		resolver: r,
		root:     root,
		header:   root.Leaf(),
		imports:  root.Leaf(),
	}
}

// Header returns the buffer whose content precedes all other output.
func (w *Writer) Header() *Buffer {
	return w.header
}

// Imports returns the buffer rendered immediately after the header. The
// import statements for the unit land here, typically written late, once
// the unit's dependency set is complete.
func (w *Writer) Imports() *Buffer {
	return w.imports
}

// Root returns the root scope.
func (w *Writer) Root() *Scope {
	return w.root
}

// Child appends a new scope at the root, after everything created so far.
func (w *Writer) Child() *Scope {
	return w.root.Child()
}

// Leaf appends a new buffer at the root, after everything created so far.
func (w *Writer) Leaf() *Buffer {
	return w.root.Leaf()
}

// Render walks the tree once, depth-first and left-to-right, resolving
// every symbolic reference through the Writer's Resolver and concatenating
// all buffer text in traversal order. For a fixed tree the result is
// byte-stable across calls.
//
// Any unresolvable reference aborts the render with a ResolveError and an
// empty result: a unit is emitted whole or not at all.
func (w *Writer) Render() (string, error) {
	var sb strings.Builder
	if err := w.root.render(&sb, w.resolver); err != nil {
		return "", err
	}
	return sb.String(), nil
}
