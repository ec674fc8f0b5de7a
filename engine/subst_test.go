package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubst_Lookup(t *testing.T) {
	s := NewSubst()
	s.Bind(Variable("X"), Atom("a"))

	t.Run("bound", func(t *testing.T) {
		v, ok := s.Lookup(Variable("X"))
		assert.True(t, ok)
		assert.Equal(t, Atom("a"), v)
	})

	t.Run("unbound", func(t *testing.T) {
		_, ok := s.Lookup(Variable("Y"))
		assert.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		var s *Subst
		_, ok := s.Lookup(Variable("X"))
		assert.False(t, ok)
	})
}

func TestSubst_Resolve(t *testing.T) {
	s := NewSubst()
	s.Bind(Variable("X"), Variable("Y"))
	s.Bind(Variable("Y"), Variable("Z"))
	s.Bind(Variable("Z"), Atom("a"))

	t.Run("chain", func(t *testing.T) {
		assert.Equal(t, Atom("a"), s.Resolve(Variable("X")))
	})

	t.Run("free variable", func(t *testing.T) {
		assert.Equal(t, Variable("W"), s.Resolve(Variable("W")))
	})

	t.Run("non-variable", func(t *testing.T) {
		assert.Equal(t, Atom("a"), s.Resolve(Atom("a")))
	})

	t.Run("compound arguments are left alone", func(t *testing.T) {
		c := Atom("f").Apply(Variable("X"))
		assert.Equal(t, c, s.Resolve(c))
	})

	t.Run("nil substitution", func(t *testing.T) {
		var s *Subst
		assert.Equal(t, Variable("X"), s.Resolve(Variable("X")))
	})
}

func TestSubst_Simplify(t *testing.T) {
	s := NewSubst()
	s.Bind(Variable("X"), Variable("Y"))
	s.Bind(Variable("Y"), Atom("a"))
	s.Bind(Variable("Z"), Atom("f").Apply(Variable("X")))

	tests := []struct {
		title string
		term  Term
		want  Term
	}{
		{title: "atom", term: Atom("a"), want: Atom("a")},
		{title: "chained variable", term: Variable("X"), want: Atom("a")},
		{title: "free variable", term: Variable("W"), want: Variable("W")},
		{title: "nested compound", term: Atom("p").Apply(Variable("Z"), Variable("W")), want: Atom("p").Apply(Atom("f").Apply(Atom("a")), Variable("W"))},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Simplify(tt.term))
		})
	}
}

func TestSubst_Bound(t *testing.T) {
	s := NewSubst()
	assert.Empty(t, s.Bound())
	s.Bind(Variable("X"), Atom("a"))
	s.Bind(Variable("Y"), Atom("b"))
	assert.Equal(t, []Variable{"X", "Y"}, s.Bound())
	assert.Equal(t, 2, s.Len())
}
