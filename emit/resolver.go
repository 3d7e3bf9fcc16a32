package emit

// A Resolver decides the final spelling of symbolic references for one
// output unit, using the alias table supplied by the upstream analyzer. The
// table maps an origin module to the local alias assigned to its import in
// this unit; an empty alias means the module's exports are visible
// unqualified.
//
// The alias table is threaded in explicitly, never read from ambient state:
// two units generated in one process can (and usually do) assign different
// aliases to the same module.
type Resolver struct {
	unit    string
	aliases map[string]string
}

// NewResolver returns a resolver for the output unit identified by unit.
// aliases maps origin module -> assigned local alias. The resolver reads the
// map but never mutates it; the caller must not mutate it between Resolve
// calls of a single render pass.
func NewResolver(unit string, aliases map[string]string) *Resolver {
	return &Resolver{unit: unit, aliases: aliases}
}

// Unit returns the identifier of the output unit this resolver serves.
func (r *Resolver) Unit() string {
	return r.unit
}

// Resolve returns the textual spelling of id in this unit.
//
// A symbol defined by the unit itself, or by a module registered with an
// empty alias, spells as its bare canonical name. A symbol from a module
// with an assigned alias spells "alias.name". A symbol whose module is not
// registered at all is a configuration error: the upstream analyzer failed
// to declare a cross-module dependency of this unit.
func (r *Resolver) Resolve(id SymbolID) (string, error) {
	if id.Module == r.unit {
		return id.Name, nil
	}
	alias, ok := r.aliases[id.Module]
	if !ok {
		return "", NewResolveError(r.unit, id)
	}
	if alias == "" {
		return id.Name, nil
	}
	return alias + "." + id.Name, nil
}
