package folresolve

// toNNF pushes negations to the leaves using De Morgan and
// quantifier-duality laws (§4.3). It assumes its input contains no
// Implication nodes (run eliminateImplications first). The result has:
//   - no Negation whose child is a Negation (double-negation cancels),
//   - no Negation whose child is Conjunction, Disjunction, Universal,
//     or Existential,
//   - Negation permitted only directly over an Atom.
func toNNF(f Formula) Formula {
	switch v := f.(type) {
	case Atom:
		return v
	case Negation:
		return negate(v.Child)
	case Conjunction:
		return Conjunction{Children: toNNFAll(v.Children)}
	case Disjunction:
		return Disjunction{Children: toNNFAll(v.Children)}
	case Universal:
		return Universal{Var: v.Var, Body: toNNF(v.Body)}
	case Existential:
		return Existential{Var: v.Var, Body: toNNF(v.Body)}
	default:
		return f
	}
}

func toNNFAll(fs []Formula) []Formula {
	out := make([]Formula, len(fs))
	for i, f := range fs {
		out[i] = toNNF(f)
	}
	return out
}

// negate produces the NNF of ¬child, applying De Morgan / quantifier
// duality and recursing so that negations never pile up on compound
// nodes.
func negate(child Formula) Formula {
	switch v := child.(type) {
	case Atom:
		return Negation{Child: v}
	case Negation:
		// ¬¬A ≡ A
		return toNNF(v.Child)
	case Conjunction:
		// ¬(A∧B) ≡ ¬A ∨ ¬B
		return Disjunction{Children: negateAll(v.Children)}
	case Disjunction:
		// ¬(A∨B) ≡ ¬A ∧ ¬B
		return Conjunction{Children: negateAll(v.Children)}
	case Universal:
		// ¬∀x P ≡ ∃x ¬P
		return Existential{Var: v.Var, Body: negate(v.Body)}
	case Existential:
		// ¬∃x P ≡ ∀x ¬P
		return Universal{Var: v.Var, Body: negate(v.Body)}
	default:
		return Negation{Child: toNNF(child)}
	}
}

func negateAll(fs []Formula) []Formula {
	out := make([]Formula, len(fs))
	for i, f := range fs {
		out[i] = negate(f)
	}
	return out
}
