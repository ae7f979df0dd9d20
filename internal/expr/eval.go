package expr

import (
	"fmt"
	"sort"
)

// Eval evaluates x under env. An identifier missing from env is an error.
func Eval(x Expr, env map[string]bool) (bool, error) {
	switch e := x.(type) {
	case Const:
		return e.Value, nil
	case Ident:
		v, ok := env[e.Name]
		if !ok {
			return false, fmt.Errorf("undefined variable %q", e.Name)
		}
		return v, nil
	case Not:
		v, err := Eval(e.X, env)
		return !v, err
	case And:
		a, err := Eval(e.A, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.B, env)
		return a && b, err
	case Or:
		a, err := Eval(e.A, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.B, env)
		return a || b, err
	case Xor:
		a, err := Eval(e.A, env)
		if err != nil {
			return false, err
		}
		b, err := Eval(e.B, env)
		return a != b, err
	default:
		return false, fmt.Errorf("unsupported expression %T", x)
	}
}

// Vars returns the sorted unique identifiers referenced by x.
func Vars(x Expr) []string {
	seen := make(map[string]bool)
	collectVars(x, seen)
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

func collectVars(x Expr, seen map[string]bool) {
	switch e := x.(type) {
	case Ident:
		seen[e.Name] = true
	case Not:
		collectVars(e.X, seen)
	case And:
		collectVars(e.A, seen)
		collectVars(e.B, seen)
	case Or:
		collectVars(e.A, seen)
		collectVars(e.B, seen)
	case Xor:
		collectVars(e.A, seen)
		collectVars(e.B, seen)
	}
}
