package engine

// Unify unifies x and y under s and returns the enlarged substitution, or
// one of *OccursError and *MismatchError. A nil s is treated as empty.
//
// When an argument pair deep in a compound fails, bindings made by the pairs
// before it remain in the returned substitution; whether to keep or discard
// them is up to the caller.
func Unify(x, y Term, s *Subst) (*Subst, error) {
	s = ensure(s)
	return x.Unify(y, s)
}
