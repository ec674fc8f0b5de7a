package engine

import "strings"

// Compound is a functor applied to one or more arguments. Arity-0 compounds
// are never constructed; use Atom instead.
type Compound struct {
	Functor Atom
	Args    []Term
}

func (c *Compound) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Functor))
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Unify unifies the compound with t, threading the substitution through the
// argument pairs left to right. On the first failing pair it stops and
// returns the substitution as grown so far.
func (c *Compound) Unify(t Term, s *Subst) (*Subst, error) {
	s = ensure(s)
	switch t := s.Resolve(t).(type) {
	case *Compound:
		if c.Functor != t.Functor || len(c.Args) != len(t.Args) {
			return s, &MismatchError{X: c, Y: t}
		}
		var err error
		for i := range c.Args {
			if s, err = Unify(c.Args[i], t.Args[i], s); err != nil {
				return s, err
			}
		}
		return s, nil
	case Variable:
		return t.Unify(c, s)
	default:
		return s, &MismatchError{X: c, Y: t}
	}
}
