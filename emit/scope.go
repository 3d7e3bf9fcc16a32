package emit

import (
	"strconv"
	"strings"
)

// node is a renderable member of the output tree. The two implementations,
// Scope and Buffer, are the only node kinds; the render traversal is
// exhaustive over them.
type node interface {
	render(sb *strings.Builder, r *Resolver) error
}

// A Scope is an interior node of the output tree. It owns an ordered list of
// children (Buffers and nested Scopes), a local used-name set, and a
// monotonic counter for synthesized identifiers.
//
// Name bookkeeping is local to one scope: UniqueName and ReserveNames never
// consult ancestor or sibling scopes. Generators allocate all names for one
// declaration inside one scope, and sibling scopes map to declarations whose
// bodies are independent namespaces in the target language, so cross-scope
// tracking would only force spurious renames.
type Scope struct {
	parent   *Scope
	children []node
	used     map[string]struct{}
	counter  int
}

func newScope(parent *Scope) *Scope {
	return &Scope{parent: parent, used: make(map[string]struct{})}
}

// Child creates a nested scope, appends it to s's children and returns it.
// The subtree rooted at the new scope renders exactly where it sits in the
// child list, regardless of when it is written to.
func (s *Scope) Child() *Scope {
	c := newScope(s)
	s.children = append(s.children, c)
	return c
}

// Leaf creates a new Buffer parented at s, appends it and returns it.
func (s *Scope) Leaf() *Buffer {
	b := &Buffer{}
	s.children = append(s.children, b)
	return b
}

// ReserveNames marks names as taken in this scope without producing output.
// Callers use it to pre-block identifiers they know will be needed later,
// e.g. parameter names, before any code referencing them is written.
func (s *Scope) ReserveNames(names ...string) {
	for _, n := range names {
		s.used[n] = struct{}{}
	}
}

// UniqueName returns base if it is free in this scope. Otherwise it applies
// mutate repeatedly until the candidate is free. The winning name is
// recorded as used before it is returned.
//
// Termination is a caller contract: mutate must eventually escape any finite
// used-name set (appending a suffix or counter does). No cycle detection is
// performed; a mutate that makes no progress loops forever.
func (s *Scope) UniqueName(base string, mutate func(string) string) string {
	name := base
	for {
		if _, taken := s.used[name]; !taken {
			s.used[name] = struct{}{}
			return name
		}
		name = mutate(name)
	}
}

// NextID returns prefix followed by this scope's counter value and advances
// the counter. Successive calls on one scope never repeat.
func (s *Scope) NextID(prefix string) string {
	id := prefix + strconv.Itoa(s.counter)
	s.counter++
	return id
}

// Root ascends parent links to the topmost scope. Generation logic nested
// arbitrarily deep uses it to register brand-new top-level declarations
// while in the middle of writing another declaration's body.
func (s *Scope) Root() *Scope {
	r := s
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// render expands children depth-first in child-list order.
func (s *Scope) render(sb *strings.Builder, r *Resolver) error {
	for _, c := range s.children {
		if err := c.render(sb, r); err != nil {
			return err
		}
	}
	return nil
}
