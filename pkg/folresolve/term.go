// Package folresolve implements a first-order logic resolution prover.
//
// Given a set of premise formulas and a goal formula written in a
// textbook-style concrete syntax (∀, ∃, ¬, ∧, ∨, →), Solve negates the
// goal, normalizes every formula into clausal form, and searches for the
// empty clause via binary resolution with unification. The package has
// no I/O, persistence, or concurrency of its own; it is a pure function
// from formula text to a proof verdict and a human-readable derivation
// log, meant to be embedded behind whatever host surface calls it.
package folresolve

// Term is the common interface for the three term kinds the prover
// operates on: variables, constants, and compound function terms.
// Terms are immutable values; every normalization pass builds fresh
// trees rather than mutating existing ones.
type Term interface {
	// String renders the term in the concrete syntax used by the parser
	// and by literal serialization inside clauses.
	String() string

	// IsVariable reports whether this term is a universally-quantified
	// placeholder rather than a ground constant or compound term.
	IsVariable() bool

	term() // unexported marker restricting Term to this package's types
}

// Variable is a universally-quantified placeholder, lowercase-initial
// by convention (e.g. "x", "child").
type Variable struct {
	Name string
}

func (v Variable) String() string   { return v.Name }
func (v Variable) IsVariable() bool { return true }
func (Variable) term()              {}

// Constant is a ground atom, uppercase-initial by convention
// (e.g. "Socrates"). A Skolem constant introduced during elimination of
// an existential with no enclosing universal is also a Constant.
type Constant struct {
	Name string
}

func (c Constant) String() string   { return c.Name }
func (c Constant) IsVariable() bool { return false }
func (Constant) term()              {}

// FunctionTerm is a compound term: a name applied to an ordered
// sequence of argument terms. The parser never produces FunctionTerms
// directly from input syntax (§4.1) — they arise only as Skolem
// functions during Skolemization, one per eliminated existential that
// has at least one enclosing universal variable.
type FunctionTerm struct {
	Name string
	Args []Term
}

func (f FunctionTerm) String() string {
	s := f.Name + "("
	for i, a := range f.Args {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s + ")"
}
func (f FunctionTerm) IsVariable() bool { return false }
func (FunctionTerm) term()              {}

// substituteTerm replaces every free occurrence of Variable(name) inside
// t with replacement. It is the term-level half of the capture-free
// substitution used by Skolemization (§4.5); the formula-level half
// lives in substituteFormula in formula.go.
func substituteTerm(t Term, name string, replacement Term) Term {
	switch v := t.(type) {
	case Variable:
		if v.Name == name {
			return replacement
		}
		return v
	case FunctionTerm:
		newArgs := make([]Term, len(v.Args))
		for i, a := range v.Args {
			newArgs[i] = substituteTerm(a, name, replacement)
		}
		return FunctionTerm{Name: v.Name, Args: newArgs}
	default:
		return t
	}
}

