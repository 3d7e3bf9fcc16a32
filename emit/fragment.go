package emit

// fragment is the atomic unit of pending output: literal text, or a symbolic
// reference whose spelling is decided at render time. The variant set is
// closed; the render traversal switches exhaustively over it.
type fragment interface {
	resolve(r *Resolver) (string, error)
}

// literal is verbatim target-language text.
type literal string

func (l literal) resolve(*Resolver) (string, error) {
	return string(l), nil
}

// symbolRef defers the spelling of a cross-module reference to the Resolver.
type symbolRef struct {
	id SymbolID
}

func (s symbolRef) resolve(r *Resolver) (string, error) {
	return r.Resolve(s.id)
}
