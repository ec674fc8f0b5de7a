package engine

import "fmt"

// Term is a first-order term: a Variable, an Atom, or a *Compound.
type Term interface {
	fmt.Stringer
	Unify(Term, *Subst) (*Subst, error)
}

// Equal checks if x and y are structurally equal: the same variant with
// recursively equal contents. Variables are compared by name, not by what
// they're bound to.
func Equal(x, y Term) bool {
	switch x := x.(type) {
	case Variable:
		y, ok := y.(Variable)
		return ok && x == y
	case Atom:
		y, ok := y.(Atom)
		return ok && x == y
	case *Compound:
		y, ok := y.(*Compound)
		if !ok || x.Functor != y.Functor || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Contains checks if t contains s after resolving through subst.
func Contains(t, s Term, subst *Subst) bool {
	switch t := subst.Resolve(t).(type) {
	case Variable:
		return t == s
	case *Compound:
		if s, ok := s.(Atom); ok && t.Functor == s {
			return true
		}
		for _, a := range t.Args {
			if Contains(a, s, subst) {
				return true
			}
		}
		return false
	default:
		return Equal(t, s)
	}
}

// Variables extracts the free variables in ts, in order of first appearance.
func Variables(subst *Subst, ts ...Term) []Variable {
	var vs []Variable
	for _, t := range ts {
		vs = appendVariables(vs, t, subst)
	}
	return vs
}

func appendVariables(vs []Variable, t Term, subst *Subst) []Variable {
	switch t := subst.Resolve(t).(type) {
	case Variable:
		for _, v := range vs {
			if v == t {
				return vs
			}
		}
		return append(vs, t)
	case *Compound:
		for _, a := range t.Args {
			vs = appendVariables(vs, a, subst)
		}
	}
	return vs
}
