package folresolve

import "strings"

// Formula is the common interface for the seven formula node kinds:
// Atom, Negation, Conjunction, Disjunction, Implication, Universal, and
// Existential. Like Term, Formula values are immutable; every
// normalization pass (implication elimination, NNF, prenex extraction,
// Skolemization, CNF distribution) returns a fresh tree.
type Formula interface {
	String() string
	formula() // unexported marker restricting Formula to this package's types
}

// Atom is a predicate applied to an ordered sequence of terms. Zero-arg
// atoms are permitted (e.g. "Raining()").
type Atom struct {
	Predicate string
	Args      []Term
}

func (a Atom) String() string {
	s := a.Predicate + "("
	for i, arg := range a.Args {
		if i > 0 {
			s += ","
		}
		s += arg.String()
	}
	return s + ")"
}
func (Atom) formula() {}

// Negation is the logical complement of a child formula.
type Negation struct {
	Child Formula
}

func (n Negation) String() string { return "¬" + n.Child.String() }
func (Negation) formula()         {}

// Conjunction is an n-ary, ordered logical AND. Order is immaterial
// semantically but preserved for deterministic output.
type Conjunction struct {
	Children []Formula
}

func (c Conjunction) String() string { return joinFormulas(c.Children, "∧") }
func (Conjunction) formula()         {}

// Disjunction is an n-ary, ordered logical OR.
type Disjunction struct {
	Children []Formula
}

func (d Disjunction) String() string { return joinFormulas(d.Children, "∨") }
func (Disjunction) formula()         {}

func joinFormulas(fs []Formula, op string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = "(" + f.String() + ")"
	}
	return strings.Join(parts, op)
}

// Implication is a binary, right-associative A → B.
type Implication struct {
	Antecedent Formula
	Consequent Formula
}

func (i Implication) String() string {
	return "(" + i.Antecedent.String() + ")→(" + i.Consequent.String() + ")"
}
func (Implication) formula() {}

// Universal is ∀Var(Body).
type Universal struct {
	Var  string
	Body Formula
}

func (u Universal) String() string { return "∀" + u.Var + "(" + u.Body.String() + ")" }
func (Universal) formula()         {}

// Existential is ∃Var(Body).
type Existential struct {
	Var  string
	Body Formula
}

func (e Existential) String() string { return "∃" + e.Var + "(" + e.Body.String() + ")" }
func (Existential) formula()         {}

// substituteFormula is the formula-level half of the capture-free
// substitution used during Skolemization (§4.5): it replaces every free
// occurrence of Variable(name) inside f with replacement, recursing
// into every constructor except a quantifier that rebinds the same
// variable name — per SPEC_FULL.md §9's decision to trust rather than
// rename bound variables, a quantifier that shadows `name` is left
// untouched below that point.
func substituteFormula(f Formula, name string, replacement Term) Formula {
	switch v := f.(type) {
	case Atom:
		newArgs := make([]Term, len(v.Args))
		for i, a := range v.Args {
			newArgs[i] = substituteTerm(a, name, replacement)
		}
		return Atom{Predicate: v.Predicate, Args: newArgs}
	case Negation:
		return Negation{Child: substituteFormula(v.Child, name, replacement)}
	case Conjunction:
		return Conjunction{Children: substituteChildren(v.Children, name, replacement)}
	case Disjunction:
		return Disjunction{Children: substituteChildren(v.Children, name, replacement)}
	case Implication:
		return Implication{
			Antecedent: substituteFormula(v.Antecedent, name, replacement),
			Consequent: substituteFormula(v.Consequent, name, replacement),
		}
	case Universal:
		if v.Var == name {
			return v // shadowed: do not descend
		}
		return Universal{Var: v.Var, Body: substituteFormula(v.Body, name, replacement)}
	case Existential:
		if v.Var == name {
			return v // shadowed: do not descend
		}
		return Existential{Var: v.Var, Body: substituteFormula(v.Body, name, replacement)}
	default:
		return f
	}
}

func substituteChildren(children []Formula, name string, replacement Term) []Formula {
	out := make([]Formula, len(children))
	for i, c := range children {
		out[i] = substituteFormula(c, name, replacement)
	}
	return out
}
