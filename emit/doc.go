// Package emit implements the scoped code-emission engine that quill's
// generators are built on.
//
// Generation logic builds a tree of output nodes instead of writing to one
// shared buffer. Interior nodes are Scopes, leaves are Buffers. A Buffer is
// an append-only log of fragments, each either literal text or a symbolic
// reference to a named entity in some module. Symbolic references are kept
// unresolved until the single Render pass, because the full set of
// cross-module dependencies of an output unit is not known while the unit is
// still being written.
//
// The tree shape solves a second problem: generation logic that is in the
// middle of writing one declaration's body may need to introduce a brand-new
// top-level declaration. Any Scope can walk to the root via its parent link
// and append a new child there; the depth-first render order depends only on
// where a node sits in its parent's child list, never on when it was written
// to.
//
// A typical unit looks like:
//
//	res := emit.NewResolver("app/db", aliases)
//	w := emit.NewWriter(res)
//	w.Header().WriteLine("// Code generated by quill. DO NOT EDIT.")
//	s := w.Child()
//	b := s.Leaf()
//	b.Write("type ")
//	b.WriteSymbol(emit.Symbol("app/db", "User"))
//	b.WriteLine(" struct {")
//	// ...
//	out, err := w.Render()
//
// Construction and rendering are two strictly separated phases: all writes
// happen first, then Render walks the tree exactly once. A Writer belongs to
// exactly one generation unit and is discarded after Render. The tree is not
// safe for concurrent use; parallelism across independent Writers is fine.
package emit
