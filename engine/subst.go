package engine

// Subst is a substitution: the variable bindings accumulated by one
// unification run. It grows monotonically and is never shared between
// concurrent runs; parallel callers each use their own Subst.
type Subst struct {
	bindings []binding
}

type binding struct {
	variable Variable
	value    Term
}

// NewSubst creates an empty substitution.
func NewSubst() *Subst {
	return &Subst{}
}

func ensure(s *Subst) *Subst {
	if s == nil {
		return NewSubst()
	}
	return s
}

// Bind adds a binding for v. The caller guarantees that v is unbound and
// that the occurs check for (v, t) has passed.
func (s *Subst) Bind(v Variable, t Term) {
	s.bindings = append(s.bindings, binding{variable: v, value: t})
}

// Lookup returns the term bound to v.
func (s *Subst) Lookup(v Variable) (Term, bool) {
	if s == nil {
		return nil, false
	}
	for _, b := range s.bindings {
		if b.variable == v {
			return b.value, true
		}
	}
	return nil, false
}

// Resolve follows the variable chain and returns the first non-variable term
// or the last free variable. Chains are finite because Bind is guarded by
// the occurs check.
func (s *Subst) Resolve(t Term) Term {
	for t != nil {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		ref, ok := s.Lookup(v)
		if !ok {
			return v
		}
		t = ref
	}
	return nil
}

// Simplify replaces every bound variable in t with its value, recursively.
func (s *Subst) Simplify(t Term) Term {
	switch t := s.Resolve(t).(type) {
	case *Compound:
		c := Compound{
			Functor: t.Functor,
			Args:    make([]Term, len(t.Args)),
		}
		for i, a := range t.Args {
			c.Args[i] = s.Simplify(a)
		}
		return &c
	default:
		return t
	}
}

// Len returns the number of bindings.
func (s *Subst) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

// Bound returns the bound variables in binding order.
func (s *Subst) Bound() []Variable {
	if s == nil {
		return nil
	}
	vs := make([]Variable, len(s.bindings))
	for i, b := range s.bindings {
		vs[i] = b.variable
	}
	return vs
}
