package folresolve

// quantifierKind distinguishes the two kinds of quantifier collected
// while pulling them to the front of a formula.
type quantifierKind int

const (
	quantUniversal quantifierKind = iota
	quantExistential
)

type quantifier struct {
	kind quantifierKind
	v    string
}

// toPrenex lifts all quantifiers in f to the front in one pass (§4.4).
// It assumes f is already in NNF (no Implication nodes, no Negation
// over a compound or quantified child) — toNNF's output satisfies this.
//
// Capture caveat (§4.4, §9 open question 2): this pass does not rename
// bound variables before pulling. Correct results therefore require
// that premises not reuse bound variable names across subformulas;
// that precondition is trusted, not enforced, matching the source.
func toPrenex(f Formula) Formula {
	matrix, quants := pull(f)
	result := matrix
	for i := len(quants) - 1; i >= 0; i-- {
		q := quants[i]
		if q.kind == quantUniversal {
			result = Universal{Var: q.v, Body: result}
		} else {
			result = Existential{Var: q.v, Body: result}
		}
	}
	return result
}

// pull walks f, returning the quantifier-free body shape with all
// quantifiers stripped out, plus the ordered list of quantifiers
// encountered (outermost/shallowest first).
func pull(f Formula) (Formula, []quantifier) {
	switch v := f.(type) {
	case Atom:
		return v, nil
	case Negation:
		// Pre-condition: NNF guarantees Negation only over an Atom, so
		// this is already a leaf with respect to quantifier pulling.
		return v, nil
	case Conjunction:
		children := make([]Formula, len(v.Children))
		var quants []quantifier
		for i, c := range v.Children {
			childMatrix, childQuants := pull(c)
			children[i] = childMatrix
			quants = append(quants, childQuants...)
		}
		return Conjunction{Children: children}, quants
	case Disjunction:
		children := make([]Formula, len(v.Children))
		var quants []quantifier
		for i, c := range v.Children {
			childMatrix, childQuants := pull(c)
			children[i] = childMatrix
			quants = append(quants, childQuants...)
		}
		return Disjunction{Children: children}, quants
	case Universal:
		bodyMatrix, bodyQuants := pull(v.Body)
		quants := append([]quantifier{{kind: quantUniversal, v: v.Var}}, bodyQuants...)
		return bodyMatrix, quants
	case Existential:
		bodyMatrix, bodyQuants := pull(v.Body)
		quants := append([]quantifier{{kind: quantExistential, v: v.Var}}, bodyQuants...)
		return bodyMatrix, quants
	default:
		return f, nil
	}
}
