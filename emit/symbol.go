package emit

// A SymbolID identifies a named entity declared in some module of the
// generated output: a generated declaration, a library export, or a logical
// file module. Its final spelling in an output unit (bare name or
// alias-qualified name) is decided by a Resolver at render time.
type SymbolID struct {
	// Module is the identifier of the module that defines the symbol,
	// e.g. an import path or a logical file URI.
	Module string
	// Name is the symbol's canonical name inside its module.
	Name string
}

// Symbol returns the SymbolID for name defined in module.
func Symbol(module, name string) SymbolID {
	return SymbolID{Module: module, Name: name}
}

// String returns a debug representation. It is never used as output text;
// output spelling comes from Resolver.Resolve.
func (id SymbolID) String() string {
	return id.Module + "#" + id.Name
}
