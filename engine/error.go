package engine

import "fmt"

// OccursError is an error that signifies a binding would have made the
// variable part of its own value, i.e. an infinite term.
type OccursError struct {
	Variable Variable
	Term     Term
}

func (e *OccursError) Error() string {
	return fmt.Sprintf("occurs check failed: %s occurs in %s", e.Variable, e.Term)
}

// MismatchError is an error that signifies two terms disagree on a constant,
// a functor, or an arity.
type MismatchError struct {
	X, Y Term
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s", e.X, e.Y)
}
