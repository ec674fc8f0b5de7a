// Package unify reads expressions like `p(X, f(Y))` and computes the most
// general substitution making two of them identical.
package unify

import "github.com/karasawa/unify/engine"

// Unify parses two expressions and unifies them on a fresh substitution.
// It returns a *SyntaxError if either expression is malformed, or the
// engine's *engine.OccursError or *engine.MismatchError if they don't unify.
func Unify(x, y string, opts ...ParseOption) (*Solution, error) {
	return UnifyWith(x, y, nil, opts...)
}

// UnifyWith is like Unify but continues an existing binding context. The
// substitution is mutated in place, so on failure it keeps the bindings made
// before the failing step; callers that want all-or-nothing semantics pass a
// copy they can discard.
func UnifyWith(x, y string, s *engine.Subst, opts ...ParseOption) (*Solution, error) {
	tx, err := NewParser(x, opts...).Term()
	if err != nil {
		return nil, err
	}
	ty, err := NewParser(y, opts...).Term()
	if err != nil {
		return nil, err
	}
	s, err = engine.Unify(tx, ty, s)
	if err != nil {
		return nil, err
	}
	return &Solution{subst: s}, nil
}
