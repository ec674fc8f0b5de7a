package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompound_Unify(t *testing.T) {
	unit := Compound{
		Functor: "foo",
		Args:    []Term{Atom("bar")},
	}

	t.Run("atom", func(t *testing.T) {
		_, err := unit.Unify(Atom("foo"), nil)
		var mismatchErr *MismatchError
		assert.ErrorAs(t, err, &mismatchErr)
	})

	t.Run("variable", func(t *testing.T) {
		t.Run("free", func(t *testing.T) {
			v := Variable("X")
			s, err := unit.Unify(v, nil)
			assert.NoError(t, err)
			assert.Equal(t, &unit, s.Resolve(v))
		})
		t.Run("bound to the same value", func(t *testing.T) {
			v := Variable("X")
			s := NewSubst()
			s.Bind(v, &unit)
			_, err := unit.Unify(v, s)
			assert.NoError(t, err)
		})
		t.Run("bound to a different value", func(t *testing.T) {
			v := Variable("X")
			s := NewSubst()
			s.Bind(v, &Compound{
				Functor: "foo",
				Args:    []Term{Atom("baz")},
			})
			_, err := unit.Unify(v, s)
			var mismatchErr *MismatchError
			assert.ErrorAs(t, err, &mismatchErr)
		})
	})

	t.Run("compound", func(t *testing.T) {
		t.Run("same", func(t *testing.T) {
			s, err := unit.Unify(&Compound{
				Functor: "foo",
				Args:    []Term{Atom("bar")},
			}, nil)
			assert.NoError(t, err)
			assert.Equal(t, 0, s.Len())
		})
		t.Run("different functor", func(t *testing.T) {
			_, err := unit.Unify(&Compound{
				Functor: "baz",
				Args:    []Term{Atom("bar")},
			}, nil)
			var mismatchErr *MismatchError
			assert.ErrorAs(t, err, &mismatchErr)
		})
		t.Run("different arity", func(t *testing.T) {
			_, err := unit.Unify(&Compound{
				Functor: "foo",
				Args:    []Term{Atom("bar"), Atom("baz")},
			}, nil)
			var mismatchErr *MismatchError
			assert.ErrorAs(t, err, &mismatchErr)
		})
		t.Run("different argument", func(t *testing.T) {
			_, err := unit.Unify(&Compound{
				Functor: "foo",
				Args:    []Term{Atom("baz")},
			}, nil)
			var mismatchErr *MismatchError
			assert.ErrorAs(t, err, &mismatchErr)
		})
		t.Run("binds arguments left to right", func(t *testing.T) {
			x, y := Variable("X"), Variable("Y")
			s, err := Atom("p").Apply(x, y).Unify(Atom("p").Apply(Atom("a"), Atom("b")), nil)
			assert.NoError(t, err)
			assert.Equal(t, Atom("a"), s.Resolve(x))
			assert.Equal(t, Atom("b"), s.Resolve(y))
			assert.Equal(t, []Variable{x, y}, s.Bound())
		})
		t.Run("keeps bindings made before the failing argument", func(t *testing.T) {
			x := Variable("X")
			s, err := Atom("p").Apply(x, Atom("b")).Unify(Atom("p").Apply(Atom("a"), Atom("c")), nil)
			assert.Equal(t, &MismatchError{X: Atom("b"), Y: Atom("c")}, err)
			assert.Equal(t, Atom("a"), s.Resolve(x))
		})
	})
}

func TestCompound_String(t *testing.T) {
	c := Atom("p").Apply(Variable("X"), Atom("f").Apply(Variable("Y")))
	assert.Equal(t, "p(X, f(Y))", c.String())
}
