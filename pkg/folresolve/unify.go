package folresolve

import (
	"regexp"
	"strings"
	"unicode"
)

// literalPattern matches a literal's predicate(args) shape. The
// character classes are Unicode-aware (\p{L}, \p{N}) so that
// identifiers drawn from Cyrillic letters (§4.1, §6) unify correctly;
// Go's regexp \w only matches ASCII word characters.
var literalPattern = regexp.MustCompile(`^([\p{L}\p{N}_]+)\((.*)\)$`)

// unifyLiterals implements the literal-string unification procedure of
// §4.8. Both lit1 and lit2 are assumed already known to have opposite
// polarity by the caller (the resolver's XOR-on-leading-negation
// test); a leading ¬ is stripped from each before comparison.
//
// The substitution returned is a flat map from argument-token string
// to argument-token string, built by positional comparison of the two
// literals' argument lists. §4.8/§9 document this unifier's known
// limitations, preserved here deliberately rather than upgraded to a
// structural Robinson unifier:
//   - argument tokens are opaque strings, so a nested function term
//     like "sk1(x,y)" embedded in an argument position is not unified
//     structurally — splitting on "," cuts it incorrectly;
//   - there is no occurs-check;
//   - bindings are not transitively closed (x↦y then y↦A does not
//     imply x↦A when σ is applied).
//
// Returns (nil, false) if the literals fail to parse, name different
// predicates, or have different arity, or if two non-variable tokens
// in the same position disagree.
func unifyLiterals(lit1, lit2 string) (map[string]string, bool) {
	pred1, args1, ok1 := splitLiteral(stripNegationMarker(lit1))
	pred2, args2, ok2 := splitLiteral(stripNegationMarker(lit2))
	if !ok1 || !ok2 || pred1 != pred2 || len(args1) != len(args2) {
		return nil, false
	}

	sigma := make(map[string]string)
	for i := range args1 {
		a, b := args1[i], args2[i]
		if a == b {
			continue
		}
		switch {
		case allLower(a):
			sigma[a] = b
		case allLower(b):
			sigma[b] = a
		default:
			// Both non-lowercase: both constants, or both spellings of
			// a compound term — no unifier (§4.8 step 3).
			return nil, false
		}
	}
	return sigma, true
}

// isNegated reports whether a literal string carries the leading ¬
// negation marker.
func isNegated(lit string) bool {
	return strings.HasPrefix(lit, "¬")
}

// stripNegationMarker removes a leading ¬, if present.
func stripNegationMarker(lit string) string {
	return strings.TrimPrefix(lit, "¬")
}

// splitLiteral parses "predicate(arg1,...,argN)" into its predicate
// name and argument tokens via a flat regex match, per §4.8 step 2.
// Argument tokens are split naively on "," — this is the source of
// the nested-function-term limitation documented above.
func splitLiteral(s string) (predicate string, args []string, ok bool) {
	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		return "", nil, false
	}
	predicate = m[1]
	argsStr := m[2]
	if argsStr == "" {
		return predicate, nil, true
	}
	parts := strings.Split(argsStr, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return predicate, parts, true
}

// allLower reports whether s is "all-lowercase" in the sense §4.8
// means: every cased rune in s is lowercase, and s contains at least
// one cased rune (digits and underscores don't count either way).
func allLower(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

// applySubstToLiteral re-parses lit, substitutes each argument token
// present in sigma, and re-serializes the result (§4.7's "apply σ
// literal-wise" resolvent-construction step). sigma is applied as a
// single flat lookup per argument, with no transitive chaining,
// preserving the unifier's documented limitation (§4.8, §9).
//
// Returns a *UnifierParseError, per §7, if lit does not match the
// predicate(args) shape; the resolver skips only the affected pair
// and continues the search.
func applySubstToLiteral(lit string, sigma map[string]string) (string, error) {
	negated := isNegated(lit)
	predicate, args, ok := splitLiteral(stripNegationMarker(lit))
	if !ok {
		return "", &UnifierParseError{Literal: lit}
	}

	newArgs := make([]string, len(args))
	for i, a := range args {
		if repl, exists := sigma[a]; exists {
			newArgs[i] = repl
		} else {
			newArgs[i] = a
		}
	}

	rebuilt := predicate + "(" + strings.Join(newArgs, ",") + ")"
	if negated {
		rebuilt = "¬" + rebuilt
	}
	return rebuilt, nil
}
