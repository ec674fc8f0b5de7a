package engine

// Atom is a constant symbol. Atoms are never bound.
type Atom string

func (a Atom) String() string {
	return string(a)
}

// Unify unifies the atom with t.
func (a Atom) Unify(t Term, s *Subst) (*Subst, error) {
	s = ensure(s)
	switch t := s.Resolve(t).(type) {
	case Atom:
		if a == t {
			return s, nil
		}
		return s, &MismatchError{X: a, Y: t}
	case Variable:
		return t.Unify(a, s)
	default:
		return s, &MismatchError{X: a, Y: t}
	}
}

// Apply returns a Compound which Functor is the Atom and Args are the
// arguments. If the arguments are empty, then returns itself.
func (a Atom) Apply(args ...Term) Term {
	if len(args) == 0 {
		return a
	}
	return &Compound{
		Functor: a,
		Args:    args,
	}
}
