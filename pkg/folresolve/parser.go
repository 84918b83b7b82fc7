package folresolve

import (
	"strings"
	"unicode"
)

// Parse reads a formula string in the concrete syntax described by
// SPEC_FULL.md §4.1/§6 — the Unicode glyphs ∀ ∃ ¬ ∧ ∨ →, parentheses,
// commas, and identifiers drawn from ASCII letters, digits,
// underscores, and Cyrillic letters — and returns the corresponding
// Formula AST.
//
// Whitespace is insignificant and is stripped before any further
// analysis. A malformed atom (unmatched parenthesis, empty predicate
// name) or an unknown operator character in a fragment that contains
// parentheses produces a *ParseError; a bare token with no parentheses
// at all is accepted leniently as a nullary predicate whatever
// characters it contains (so "P&Q" is one predicate named "P&Q"),
// matching the source prover's behavior (§4.1, §9 open question 1).
func Parse(input string) (Formula, error) {
	stripped := stripWhitespace(input)
	if stripped == "" {
		return nil, &ParseError{Input: input, Offset: input}
	}
	return parseImplication([]rune(stripped), input)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// precedence, weak to strong: implication < disjunction < conjunction <
// negation < quantifier/atom (§4.1).

func parseImplication(s []rune, original string) (Formula, error) {
	s = stripOuterParens(s)
	if len(s) == 0 {
		return nil, &ParseError{Input: original, Offset: "(empty)"}
	}
	if left, right, found := splitLeftmostAtDepth0(s, '→'); found {
		antecedent, err := parseDisjunction(left, original)
		if err != nil {
			return nil, err
		}
		consequent, err := parseImplication(right, original) // right-associative
		if err != nil {
			return nil, err
		}
		return Implication{Antecedent: antecedent, Consequent: consequent}, nil
	}
	return parseDisjunction(s, original)
}

func parseDisjunction(s []rune, original string) (Formula, error) {
	parts := splitAllAtDepth0(s, '∨')
	if len(parts) == 1 {
		return parseConjunction(parts[0], original)
	}
	children := make([]Formula, len(parts))
	for i, p := range parts {
		f, err := parseConjunction(p, original)
		if err != nil {
			return nil, err
		}
		children[i] = f
	}
	return Disjunction{Children: children}, nil
}

func parseConjunction(s []rune, original string) (Formula, error) {
	parts := splitAllAtDepth0(s, '∧')
	if len(parts) == 1 {
		return parseUnary(parts[0], original)
	}
	children := make([]Formula, len(parts))
	for i, p := range parts {
		f, err := parseUnary(p, original)
		if err != nil {
			return nil, err
		}
		children[i] = f
	}
	return Conjunction{Children: children}, nil
}

// parseUnary handles negation, quantifiers, explicit parenthesized
// groups (which reopen full precedence), and falls through to atom
// parsing.
func parseUnary(s []rune, original string) (Formula, error) {
	if len(s) == 0 {
		return nil, &ParseError{Input: original, Offset: "(empty)"}
	}

	switch s[0] {
	case '¬':
		child, err := parseUnary(s[1:], original)
		if err != nil {
			return nil, err
		}
		return Negation{Child: child}, nil
	case '∀', '∃':
		return parseQuantifier(s, original)
	case '(':
		closeIdx, err := findMatchingParen(s, 0)
		if err != nil {
			return nil, &ParseError{Input: original, Offset: string(s)}
		}
		if closeIdx == len(s)-1 {
			return parseImplication(s[1:closeIdx], original)
		}
		// Parens don't wrap the whole fragment; fall through to atom
		// parsing, which will report a precise error if this isn't a
		// well-formed atom either.
	}

	return parseAtom(s, original)
}

func parseQuantifier(s []rune, original string) (Formula, error) {
	kind := s[0] // '∀' or '∃'
	rest := s[1:]

	nameEnd := 0
	for nameEnd < len(rest) && isIdentChar(rest[nameEnd]) {
		nameEnd++
	}
	if nameEnd == 0 {
		return nil, &ParseError{Input: original, Offset: string(s)}
	}
	// Whitespace stripping runs a variable into an unparenthesized body
	// ("∃x Human(x)" becomes "∃xHuman(x)"): the variable name ends before
	// the first uppercase rune after its first, and such a body extends
	// over the rest of this fragment.
	for i := 1; i < nameEnd; i++ {
		if unicode.IsUpper(rest[i]) {
			nameEnd = i
			break
		}
	}
	varName := string(rest[:nameEnd])
	rest = rest[nameEnd:]
	if len(rest) > 0 && rest[0] != '(' {
		rest = append(append([]rune{'('}, rest...), ')')
	}

	if len(rest) == 0 || rest[0] != '(' {
		return nil, &ParseError{Input: original, Offset: string(s)}
	}
	closeIdx, err := findMatchingParen(rest, 0)
	if err != nil {
		return nil, &ParseError{Input: original, Offset: string(s)}
	}
	if trailing := rest[closeIdx+1:]; len(trailing) != 0 {
		return nil, &ParseError{Input: original, Offset: string(trailing)}
	}

	body, err := parseImplication(rest[1:closeIdx], original)
	if err != nil {
		return nil, err
	}

	if kind == '∀' {
		return Universal{Var: varName, Body: body}, nil
	}
	return Existential{Var: varName, Body: body}, nil
}

func parseAtom(s []rune, original string) (Formula, error) {
	parenIdx := -1
	for i, r := range s {
		if r == '(' {
			parenIdx = i
			break
		}
	}

	// No parentheses at all: lenient fallback, treat the whole token as
	// a nullary predicate (§4.1, §9 open question 1).
	if parenIdx == -1 {
		name := string(s)
		if name == "" {
			return nil, &ParseError{Input: original, Offset: "(empty)"}
		}
		return Atom{Predicate: name, Args: nil}, nil
	}

	name := string(s[:parenIdx])
	if name == "" {
		return nil, &ParseError{Input: original, Offset: string(s)}
	}
	for _, r := range name {
		if !isIdentChar(r) {
			return nil, &ParseError{Input: original, Offset: name}
		}
	}

	closeIdx, err := findMatchingParen(s, parenIdx)
	if err != nil || closeIdx != len(s)-1 {
		return nil, &ParseError{Input: original, Offset: string(s)}
	}

	argsStr := s[parenIdx+1 : closeIdx]
	if len(argsStr) == 0 {
		return Atom{Predicate: name, Args: nil}, nil
	}

	argParts := splitAllAtDepth0(argsStr, ',')
	args := make([]Term, len(argParts))
	for i, p := range argParts {
		args[i] = parseTerm(p)
	}
	return Atom{Predicate: name, Args: args}, nil
}

// parseTerm classifies a single argument token into a Variable or
// Constant (§4.1). Non-identifier characters are stripped first; the
// parser never produces FunctionTerms from input syntax.
func parseTerm(s []rune) Term {
	var b strings.Builder
	for _, r := range s {
		if isIdentChar(r) {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return Variable{Name: ""}
	}
	first := []rune(name)[0]
	if unicode.IsUpper(first) {
		return Constant{Name: name}
	}
	return Variable{Name: name}
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// stripOuterParens removes a single layer of parentheses that wraps
// the whole fragment, repeating while that remains true. "Wraps the
// whole fragment" means the opening paren's matching close paren is
// the fragment's final rune, i.e. depth never returns to zero before
// the end (§4.1).
func stripOuterParens(s []rune) []rune {
	for len(s) >= 2 && s[0] == '(' {
		closeIdx, err := findMatchingParen(s, 0)
		if err != nil || closeIdx != len(s)-1 {
			break
		}
		s = s[1:closeIdx]
	}
	return s
}

// findMatchingParen returns the index within s of the parenthesis that
// matches the opening parenthesis at openIdx.
func findMatchingParen(s []rune, openIdx int) (int, error) {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, &ParseError{Input: string(s), Offset: string(s[openIdx:])}
}

// splitAllAtDepth0 splits s on every occurrence of op that appears at
// parenthesis depth zero, collapsing same-precedence operators into a
// flat list of operands (§4.1).
func splitAllAtDepth0(s []rune, op rune) [][]rune {
	depth := 0
	start := 0
	var parts [][]rune
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if r == op && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// splitLeftmostAtDepth0 finds the leftmost occurrence of op at
// parenthesis depth zero and splits s around it. Used for implication,
// which is right-associative: only the leftmost → is split, and the
// remainder is re-parsed as one expression (§4.1).
func splitLeftmostAtDepth0(s []rune, op rune) (left, right []rune, found bool) {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if r == op && depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return nil, nil, false
}
