// Package runtime implements the Slate execution engine: the lexical scope
// chain and the tree-walking interpreter.
package runtime

import "github.com/slatelang/slate/pkg/types"

// Scope manages variable storage with parent scope chaining. Lookups start
// at the current frame and walk up the parent chain; new variables are
// always created in the current frame. The whole chain is owned and
// mutated by the single evaluation goroutine, so there is no locking.
type Scope struct {
	parent *Scope
	vars   map[string]types.Value
}

// NewScope creates a new root scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]types.Value)}
}

// NewChildScope creates a child scope that delegates to this scope. The
// child never copies or merges with its parent.
func (s *Scope) NewChildScope() *Scope {
	return &Scope{parent: s, vars: make(map[string]types.Value)}
}

// Define inserts a variable into the current frame unconditionally, even if
// the name already exists here or in a parent. Redefinition in the same
// frame overwrites.
func (s *Scope) Define(name string, value types.Value) {
	s.vars[name] = value
}

// Get retrieves a variable value, searching up the scope chain. The second
// return value is false when no frame defines the name.
func (s *Scope) Get(name string) (types.Value, bool) {
	if v, ok := s.vars[name]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.Get(name)
	}
	return types.Null, false
}

// Assign overwrites the variable in the nearest frame that already defines
// it. Returns false when no frame defines the name; assignment never
// creates a variable.
func (s *Scope) Assign(name string, value types.Value) bool {
	if _, ok := s.vars[name]; ok {
		s.vars[name] = value
		return true
	}
	if s.parent != nil {
		return s.parent.Assign(name, value)
	}
	return false
}
