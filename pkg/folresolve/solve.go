package folresolve

import "fmt"

// Solve attempts to prove goal from premises by refutation (§1, §4):
// every premise is normalized to CNF as-is, the goal is normalized
// negated, and resolution searches the union for the empty clause.
//
// It returns proven=true iff the empty clause was derived, alongside
// a human-readable, line-oriented derivation log: each input
// formula's clausal form (tagged "[КНФ]" for premises, "[КНФ]
// (отрицание цели)" for the negated goal, matching the source's
// Russian-language log vocabulary, §10.5), followed by the resolver's
// trace (each unification with its substitution, then the resolvent it
// yields) and, only if the empty clause is derived, a closing line
// saying so.
//
// If any premise or the goal fails to parse, Solve stops immediately
// and returns proven=false, appending a single log line naming the
// offending input (§7) to the clause lines already logged — it never
// panics on malformed input.
func Solve(premises []string, goal string) (proven bool, log []string) {
	gen := NewSkolemGenerator()
	db := newClauseDatabase()

	for _, p := range premises {
		clauses, err := clausify(p, gen)
		if err != nil {
			return false, append(log, fmt.Sprintf("Ошибка разбора посылки %q: %s", p, err))
		}
		for _, c := range clauses {
			log = append(log, "[КНФ] "+c.String())
			db.add(c)
		}
	}

	goalFormula, err := Parse(goal)
	if err != nil {
		return false, append(log, fmt.Sprintf("Ошибка разбора цели %q: %s", goal, err))
	}
	negatedGoal := Negation{Child: goalFormula}
	goalClauses, err := clausifyFormula(negatedGoal, gen)
	if err != nil {
		return false, append(log, fmt.Sprintf("Ошибка разбора цели %q: %s", goal, err))
	}
	for _, c := range goalClauses {
		log = append(log, "[КНФ] (отрицание цели) "+c.String())
		db.add(c)
	}

	proven, resolutionLog := resolve(db)
	log = append(log, resolutionLog...)
	return proven, log
}

// clausify parses formula text and runs it through the five
// normalization passes in order (§4): implication elimination, NNF,
// prenexing, Skolemization, CNF distribution.
func clausify(formula string, gen *SkolemGenerator) ([]Clause, error) {
	f, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	return clausifyFormula(f, gen)
}

// clausifyFormula runs an already-parsed formula through the same
// five passes, used directly for the negated goal so the Negation
// wrapper built in Solve doesn't need to round-trip through Parse.
func clausifyFormula(f Formula, gen *SkolemGenerator) ([]Clause, error) {
	f = eliminateImplications(f)
	f = toNNF(f)
	f = toPrenex(f)
	f = skolemize(f, nil, gen)
	return toCNF(f)
}
