package langdef

import (
	"github.com/ava12/adoc/grammar"
	"github.com/ava12/adoc/internal/ints"
)

func walkExpr(x *grammar.Expr, f func(*grammar.Expr)) {
	f(x)
	for _, item := range x.Items {
		walkExpr(item, f)
	}
}

func findUnusedRules(g *grammar.Grammar, e error) error {
	if e != nil {
		return e
	}

	used := ints.NewSet(grammar.DefaultRule)
	for _, r := range g.Rules {
		walkExpr(r.Expr, func(x *grammar.Expr) {
			if x.Kind == grammar.Ref {
				used.Add(x.Rule)
			}
		})
	}

	var unused []string
	for i, r := range g.Rules {
		if !r.IsStructural() && !used.Contains(i) {
			unused = append(unused, r.Name)
		}
	}
	if len(unused) > 0 {
		return unusedRuleError(unused)
	}
	return nil
}

func isNullable(x *grammar.Expr, nullable *ints.Set) bool {
	switch x.Kind {
	case grammar.Literal:
		return x.Text == ""
	case grammar.Range, grammar.Any:
		return false
	case grammar.Ref:
		return nullable.Contains(x.Rule)
	case grammar.Seq:
		for _, item := range x.Items {
			if !isNullable(item, nullable) {
				return false
			}
		}
		return true
	case grammar.Choice:
		for _, item := range x.Items {
			if isNullable(item, nullable) {
				return true
			}
		}
		return false
	case grammar.Plus:
		return isNullable(x.Items[0], nullable)
	default:
		return true
	}
}

// findNullableRules returns the set of rules that may succeed without consuming input.
func findNullableRules(g *grammar.Grammar) *ints.Set {
	nullable := ints.NewSet()
	for changed := true; changed; {
		changed = false
		for i, r := range g.Rules {
			if !nullable.Contains(i) && isNullable(r.Expr, nullable) {
				nullable.Add(i)
				changed = true
			}
		}
	}
	return nullable
}

func findEmptyRepetitions(g *grammar.Grammar, nullable *ints.Set, e error) error {
	if e != nil {
		return e
	}

	var names []string
	for _, r := range g.Rules {
		found := false
		walkExpr(r.Expr, func(x *grammar.Expr) {
			if (x.Kind == grammar.Star || x.Kind == grammar.Plus) && isNullable(x.Items[0], nullable) {
				found = true
			}
		})
		if found {
			names = append(names, r.Name)
		}
	}

	if len(names) > 0 {
		return emptyRepetitionError(names)
	}
	return nil
}

// leftCalls adds to calls the rules that x may invoke at its starting position.
func leftCalls(x *grammar.Expr, nullable, calls *ints.Set) {
	switch x.Kind {
	case grammar.Ref:
		calls.Add(x.Rule)
	case grammar.Seq:
		for _, item := range x.Items {
			leftCalls(item, nullable, calls)
			if !isNullable(item, nullable) {
				break
			}
		}
	case grammar.Choice, grammar.Star, grammar.Plus, grammar.Opt, grammar.Not, grammar.And:
		for _, item := range x.Items {
			leftCalls(item, nullable, calls)
		}
	}
}

func findLeftRecursions(g *grammar.Grammar, nullable *ints.Set, e error) error {
	if e != nil {
		return e
	}

	reach := make([]*ints.Set, len(g.Rules))
	for i, r := range g.Rules {
		reach[i] = ints.NewSet()
		leftCalls(r.Expr, nullable, reach[i])
	}

	for changed := true; changed; {
		changed = false
		for i := range reach {
			for _, j := range reach[i].ToSlice() {
				if reach[i].Union(reach[j]) {
					changed = true
				}
			}
		}
	}

	var names []string
	for i, r := range g.Rules {
		if reach[i].Contains(i) {
			names = append(names, r.Name)
		}
	}
	if len(names) > 0 {
		return leftRecursionError(names)
	}
	return nil
}
