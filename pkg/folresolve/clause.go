package folresolve

import (
	"sort"
	"strings"
)

// Clause is an unordered set of literal strings, represented
// canonically as a sorted, duplicate-free slice for hashing and
// deduplication (§3). The empty clause (len(c) == 0) denotes
// contradiction.
type Clause []string

// NewClause builds a canonical Clause from a (possibly unsorted,
// possibly duplicate-containing) list of literal strings.
func NewClause(literals []string) Clause {
	seen := make(map[string]bool, len(literals))
	out := make([]string, 0, len(literals))
	for _, l := range literals {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	sort.Strings(out)
	return Clause(out)
}

// Key returns the canonical string used to deduplicate clauses in a
// clauseDatabase; it is stable under literal reordering because the
// clause is kept sorted.
func (c Clause) Key() string {
	return strings.Join(c, "|")
}

// IsEmpty reports whether this is the empty clause — the contradiction
// that proves the goal when derived (§3, §8).
func (c Clause) IsEmpty() bool {
	return len(c) == 0
}

// String renders the clause in braces, e.g. "{Mortal(x), ¬Human(x)}".
func (c Clause) String() string {
	if len(c) == 0 {
		return "{} (EMPTY CLAUSE)"
	}
	return "{" + strings.Join(c, ", ") + "}"
}

// clauseDatabase is the resolver's clause store (§3): a
// duplicate-rejecting set of canonical clauses plus an ordered working
// list for fair pairwise iteration. Grounded on pldb.go's
// Database/relationData dedup-by-hash design (factSet map[uint64]bool
// there; here a map keyed on the clause's canonical string, since
// clauses are few enough per solve call that string keys are simpler
// than a term-hash index and avoid hash collisions entirely).
type clauseDatabase struct {
	seen    map[string]bool
	clauses []Clause
}

func newClauseDatabase() *clauseDatabase {
	return &clauseDatabase{seen: make(map[string]bool)}
}

// add inserts clause if it is not already present, returning true if
// it was newly added (§3's duplicate-rejecting set; §8's "inserting
// duplicates does not grow S").
func (db *clauseDatabase) add(c Clause) bool {
	key := c.Key()
	if db.seen[key] {
		return false
	}
	db.seen[key] = true
	db.clauses = append(db.clauses, c)
	return true
}

// snapshot returns the clauses currently in the database, in insertion
// order, for a resolver sweep to iterate over.
func (db *clauseDatabase) snapshot() []Clause {
	out := make([]Clause, len(db.clauses))
	copy(out, db.clauses)
	return out
}
