package unify

import "fmt"

// SyntaxError is an error that signifies a malformed expression.
type SyntaxError struct {
	Pos    int
	Detail string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Detail)
}
