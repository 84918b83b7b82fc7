package folresolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds enumerated in SPEC_FULL.md §7 and
// §10.2. Callers match against these with errors.Is rather than
// inspecting message text.
var (
	// ErrParse marks a malformed formula string. Solve never panics on
	// this; it returns proven=false with a single log line naming the
	// offending input (§7).
	ErrParse = errors.New("folresolve: malformed formula")

	// ErrCnfStructure marks a Conjunction found nested inside a
	// Disjunction after distribution — an implementation invariant
	// violation in the normalizer itself, not a user input error (§4.6,
	// §7). It is returned as a Go error rather than panicking. Solve
	// reports it the same way as a parse failure (a log line and
	// proven=false), so neither Solve's caller nor the CLI host treats
	// it as fatal.
	ErrCnfStructure = errors.New("folresolve: conjunction nested inside disjunction after CNF distribution")

	// ErrUnifierParse marks a literal that failed the predicate(args)
	// regex during resolvent construction (§4.8). The resolver skips
	// only the affected pair and continues the search (§7).
	ErrUnifierParse = errors.New("folresolve: literal does not match predicate(args) shape")
)

// ParseError carries the offending substring alongside ErrParse so a
// caller can report precisely what failed to parse.
type ParseError struct {
	Input  string // the full formula string that failed to parse
	Offset string // the specific offending substring, if narrower than Input
}

func (e *ParseError) Error() string {
	if e.Offset != "" && e.Offset != e.Input {
		return fmt.Sprintf("parse error in %q: offending fragment %q", e.Input, e.Offset)
	}
	return fmt.Sprintf("parse error in %q", e.Input)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// CnfStructureError carries the malformed subtree's string form for
// diagnosis (§4.6, §7).
type CnfStructureError struct {
	Subtree string
}

func (e *CnfStructureError) Error() string {
	return fmt.Sprintf("cnf structure error: conjunction nested inside disjunction at %q", e.Subtree)
}

func (e *CnfStructureError) Unwrap() error { return ErrCnfStructure }

// UnifierParseError carries the literal that failed to parse during
// resolvent construction (§4.8, §7).
type UnifierParseError struct {
	Literal string
}

func (e *UnifierParseError) Error() string {
	return fmt.Sprintf("unifier parse error: literal %q does not match predicate(args)", e.Literal)
}

func (e *UnifierParseError) Unwrap() error { return ErrUnifierParse }
