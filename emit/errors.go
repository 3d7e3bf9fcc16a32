package emit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the emission engine's failure classes.
var (
	// ErrUnresolvedSymbol indicates a symbolic reference whose origin
	// module has no entry in the unit's alias table.
	ErrUnresolvedSymbol = errors.New("quill: unresolved symbol")
	// ErrMissingCapability indicates that generation logic requested a
	// representation the input model was not configured with.
	ErrMissingCapability = errors.New("quill: missing capability")
)

// ResolveError reports a symbolic reference that cannot be spelled in the
// current output unit because its origin module is not registered in the
// alias table. It surfaces at render time and aborts the unit; the fix is
// upstream, in the declared cross-module dependencies.
type ResolveError struct {
	Unit   string // output unit being rendered
	Symbol SymbolID
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("quill: cannot resolve %s in unit %q: origin module not in alias table", e.Symbol, e.Unit)
}

// Is reports whether the target matches the sentinel error for ResolveError.
func (e *ResolveError) Is(target error) bool {
	return target == ErrUnresolvedSymbol
}

// NewResolveError creates a new ResolveError.
func NewResolveError(unit string, sym SymbolID) *ResolveError {
	return &ResolveError{Unit: unit, Symbol: sym}
}

// CapabilityError reports a request for a representation that requires a
// capability the input model does not have, e.g. asking for a user-authored
// substitute type when none was configured. It is raised at the call site,
// not deferred to render time.
type CapabilityError struct {
	Capability string
	Message    string
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("quill: capability %q not available: %s", e.Capability, e.Message)
	}
	return fmt.Sprintf("quill: capability %q not available", e.Capability)
}

// Is reports whether the target matches the sentinel error for CapabilityError.
func (e *CapabilityError) Is(target error) bool {
	return target == ErrMissingCapability
}

// NewCapabilityError creates a new CapabilityError.
func NewCapabilityError(capability, message string) *CapabilityError {
	return &CapabilityError{Capability: capability, Message: message}
}

// IsResolveError reports whether the error is a ResolveError.
func IsResolveError(err error) bool {
	var resolveErr *ResolveError
	return errors.As(err, &resolveErr)
}

// IsCapabilityError reports whether the error is a CapabilityError.
func IsCapabilityError(err error) bool {
	var capErr *CapabilityError
	return errors.As(err, &capErr)
}
