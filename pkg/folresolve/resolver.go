package folresolve

import (
	"fmt"
	"strings"
)

// resolve runs the naive all-pairs saturation search of §4.7 to fixed
// point over the clause set seeded into db, returning whether the
// empty clause was derived and the full derivation log.
//
// This is a deliberately "dumb" breadth-style sweep, not a
// given-clause algorithm: every outer iteration re-examines every
// unordered pair of clauses currently in the database, grounded
// directly on the source's dumb_resolution. None of the smarter
// strategies SPEC_FULL.md §9 permits (set-of-support, predicate
// indexing, subsumption deletion) is implemented.
func resolve(db *clauseDatabase) (proven bool, log []string) {
	for {
		progress := false
		clauses := db.snapshot()

		for i := 0; i < len(clauses); i++ {
			for j := i + 1; j < len(clauses); j++ {
				resolvents, steps := resolveClausePair(clauses[i], clauses[j])
				log = append(log, steps...)

				for _, r := range resolvents {
					if r.IsEmpty() {
						log = append(log, "Пустой дизъюнкт получен — цель доказана.")
						return true, log
					}
					if db.add(r) {
						progress = true
					}
				}
			}
		}

		if !progress {
			return false, log
		}
	}
}

// resolveClausePair tries every literal from c1 against every literal
// from c2, attempting a resolution step wherever the two literals have
// opposite polarity and unify (§4.7). A single pair of clauses can
// yield more than one resolvent, one per unifiable literal pair.
func resolveClausePair(c1, c2 Clause) (resolvents []Clause, log []string) {
	for _, lit1 := range c1 {
		for _, lit2 := range c2 {
			if isNegated(lit1) == isNegated(lit2) {
				continue // same polarity: cannot resolve on this pair
			}

			sigma, ok := unifyLiterals(lit1, lit2)
			if !ok {
				continue
			}

			resolvent, err := buildResolvent(c1, lit1, c2, lit2, sigma)
			if err != nil {
				log = append(log, fmt.Sprintf("Пропуск пары (%s, %s): %s", lit1, lit2, err))
				continue
			}

			log = append(log, fmt.Sprintf("Унификация: %s <-> %s под %s", lit1, lit2, formatSubst(sigma)))
			log = append(log, fmt.Sprintf("Резольвента %s и %s: %s", c1, c2, resolvent))
			resolvents = append(resolvents, resolvent)
		}
	}
	return resolvents, log
}

// buildResolvent assembles the resolvent of c1 and c2 on the literal
// pair (lit1, lit2): every other literal of each clause, with sigma
// applied literal-wise (§4.7). A literal that fails to re-parse under
// sigma surfaces as *UnifierParseError so the caller can skip just
// this pair rather than aborting the whole search (§7).
func buildResolvent(c1 Clause, lit1 string, c2 Clause, lit2 string, sigma map[string]string) (Clause, error) {
	var literals []string

	for _, l := range c1 {
		if l == lit1 {
			continue
		}
		substituted, err := applySubstToLiteral(l, sigma)
		if err != nil {
			return nil, err
		}
		literals = append(literals, substituted)
	}
	for _, l := range c2 {
		if l == lit2 {
			continue
		}
		substituted, err := applySubstToLiteral(l, sigma)
		if err != nil {
			return nil, err
		}
		literals = append(literals, substituted)
	}

	return NewClause(literals), nil
}

// formatSubst renders a substitution map in a stable, sorted form for
// the derivation log.
func formatSubst(sigma map[string]string) string {
	pairs := make([]string, 0, len(sigma))
	for k, v := range sigma {
		pairs = append(pairs, fmt.Sprintf("%s/%s", k, v))
	}
	sorted := NewClause(pairs) // borrow Clause's sort+dedup for stable log ordering
	return "{" + strings.Join(sorted, ", ") + "}"
}
