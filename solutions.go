package unify

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/karasawa/unify/engine"
)

// Solution is the result of a successful unification. By calling the Scan
// method, you can retrieve the values the run bound.
type Solution struct {
	subst *engine.Subst
}

// Subst returns the underlying substitution, for chaining further
// unifications in the same binding context.
func (s *Solution) Subst() *engine.Subst {
	return s.subst
}

// Vars returns the names of the variables bound during the run, in binding
// order.
func (s *Solution) Vars() []string {
	bound := s.subst.Bound()
	ns := make([]string, len(bound))
	for i, v := range bound {
		ns[i] = string(v)
	}
	return ns
}

// Scan copies the fully resolved variable values into the specified map.
// Currently, map[string]engine.Term and map[string]string are supported.
func (s *Solution) Scan(out interface{}) error {
	o := reflect.ValueOf(out)
	if o.Kind() != reflect.Map || o.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("invalid kind: %s", o.Kind())
	}
	for _, v := range s.subst.Bound() {
		t := s.subst.Simplify(v)
		var val reflect.Value
		switch o.Type().Elem().Kind() {
		case reflect.String:
			val = reflect.ValueOf(t.String())
		case reflect.Interface:
			val = reflect.ValueOf(t)
		default:
			return fmt.Errorf("invalid element type: %s", o.Type().Elem())
		}
		o.SetMapIndex(reflect.ValueOf(string(v)), val)
	}
	return nil
}

func (s *Solution) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.subst.Bound() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", v, s.subst.Simplify(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
