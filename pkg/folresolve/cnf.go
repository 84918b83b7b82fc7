package folresolve

// toCNF converts a NNF, prenex, Skolemized formula (outer Universals
// only, no Existential anywhere) into a list of clauses (§4.6).
//
// It drops the outer Universal wrappers (they are implicit at the
// clause level, per §3's invariant that all remaining clause variables
// are universally quantified), distributes Disjunction over
// Conjunction, and flattens the result into clauses of literal
// strings. A Conjunction found nested inside a Disjunction after
// distribution indicates a distributor bug and is reported as a
// *CnfStructureError (§4.6, §7) rather than silently mishandled.
func toCNF(f Formula) ([]Clause, error) {
	matrix := dropOuterUniversals(f)
	distributed := distribute(matrix)
	return flattenClauses(distributed)
}

// dropOuterUniversals strips a chain of leading Universal wrappers.
func dropOuterUniversals(f Formula) Formula {
	for {
		u, ok := f.(Universal)
		if !ok {
			return f
		}
		f = u.Body
	}
}

// distribute recursively distributes Disjunction over Conjunction
// (§4.6):
//   - Conjunction(children) → Conjunction(map distribute children).
//   - Disjunction(children): distribute each child; if any distributed
//     child is itself a Conjunction(c1..ck), with rest the other
//     children, rewrite as Conjunction([distribute(Disjunction([ci] ++
//     rest)) for ci in c1..ck]). Otherwise return
//     Disjunction(distributed_children).
//   - Leaves pass through unchanged.
func distribute(f Formula) Formula {
	switch v := f.(type) {
	case Conjunction:
		children := make([]Formula, len(v.Children))
		for i, c := range v.Children {
			children[i] = distribute(c)
		}
		return Conjunction{Children: children}

	case Disjunction:
		distChildren := make([]Formula, len(v.Children))
		for i, c := range v.Children {
			distChildren[i] = distribute(c)
		}
		for i, c := range distChildren {
			conj, ok := c.(Conjunction)
			if !ok {
				continue
			}
			rest := make([]Formula, 0, len(distChildren)-1)
			rest = append(rest, distChildren[:i]...)
			rest = append(rest, distChildren[i+1:]...)
			newChildren := make([]Formula, len(conj.Children))
			for j, ci := range conj.Children {
				newChildren[j] = distribute(Disjunction{Children: append([]Formula{ci}, rest...)})
			}
			return Conjunction{Children: newChildren}
		}
		return Disjunction{Children: distChildren}

	default:
		return f
	}
}

// flattenClauses flattens a distributed CNF formula's outer
// Conjunction chain into a list of clauses.
func flattenClauses(f Formula) ([]Clause, error) {
	if conj, ok := f.(Conjunction); ok {
		var clauses []Clause
		for _, c := range conj.Children {
			sub, err := flattenClauses(c)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, sub...)
		}
		return clauses, nil
	}
	literals, err := flattenLiterals(f)
	if err != nil {
		return nil, err
	}
	return []Clause{NewClause(literals)}, nil
}

// flattenLiterals flattens a single clause's nested Disjunctions into
// a flat list of literal strings, serializing each Atom/Negation(Atom)
// leaf (§3). Encountering a Conjunction here means distribution left
// an And nested inside an Or — the invariant violation reported as
// *CnfStructureError (§4.6).
func flattenLiterals(f Formula) ([]string, error) {
	switch v := f.(type) {
	case Atom:
		return []string{serializeLiteral(v, false)}, nil
	case Negation:
		atom, ok := v.Child.(Atom)
		if !ok {
			return nil, &CnfStructureError{Subtree: f.String()}
		}
		return []string{serializeLiteral(atom, true)}, nil
	case Disjunction:
		var literals []string
		for _, c := range v.Children {
			sub, err := flattenLiterals(c)
			if err != nil {
				return nil, err
			}
			literals = append(literals, sub...)
		}
		return literals, nil
	default:
		return nil, &CnfStructureError{Subtree: f.String()}
	}
}

// serializeLiteral renders an atom as its canonical literal string
// (§3): "predicate(arg1,...,argN)", optionally prefixed with ¬.
func serializeLiteral(a Atom, negated bool) string {
	s := a.String()
	if negated {
		return "¬" + s
	}
	return s
}
