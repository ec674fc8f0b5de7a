package engine

import (
	"fmt"
	"sync/atomic"
)

var varCounter int64

// Variable is a named logical variable. Its identity is its name.
type Variable string

// NewVariable creates a fresh anonymous variable with a name no parsed term
// can collide with.
func NewVariable() Variable {
	n := atomic.AddInt64(&varCounter, 1)
	return Variable(fmt.Sprintf("_%d", n))
}

func (v Variable) String() string {
	return string(v)
}

// Unify unifies the variable with t.
func (v Variable) Unify(t Term, s *Subst) (*Subst, error) {
	s = ensure(s)
	if ref, ok := s.Lookup(v); ok {
		return Unify(ref, t, s)
	}
	t = s.Resolve(t)
	if w, ok := t.(Variable); ok && w == v {
		return s, nil
	}
	if Contains(t, v, s) {
		return s, &OccursError{Variable: v, Term: t}
	}
	s.Bind(v, t)
	return s, nil
}
