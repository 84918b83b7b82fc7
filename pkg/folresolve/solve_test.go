package folresolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveScenarios(t *testing.T) {
	t.Run("Socrates", func(t *testing.T) {
		proven, log := Solve(
			[]string{"∀x (Human(x) → Mortal(x))", "Human(Socrates)"},
			"Mortal(Socrates)",
		)
		require.True(t, proven)
		assertLogContains(t, log, "¬Human(x)")
		assertLogContains(t, log, "Mortal(x)")
		assertLogContains(t, log, "Human(Socrates)")
		assertLogContains(t, log, "¬Mortal(Socrates)")
	})

	t.Run("Penguins are unprovable", func(t *testing.T) {
		proven, _ := Solve(
			[]string{"∀x (Bird(x) → Flies(x))", "Bird(Penguin)"},
			"Flies(Eagle)",
		)
		assert.False(t, proven)
	})

	t.Run("transitive closure needed across two premises", func(t *testing.T) {
		proven, _ := Solve(
			[]string{"∀x (A(x) → B(x))", "∀x (B(x) → C(x))", "A(k)"},
			"C(k)",
		)
		assert.True(t, proven)
	})

	t.Run("existential elimination via shared Skolem constant", func(t *testing.T) {
		proven, log := Solve([]string{"∃x Human(x)"}, "∃x Human(x)")
		require.True(t, proven)
		assertLogContains(t, log, "sk1")
	})

	t.Run("contradictory premises prove anything", func(t *testing.T) {
		proven, _ := Solve([]string{"P(A)", "¬P(A)"}, "Q(B)")
		assert.True(t, proven)
	})

	t.Run("disjunction in conclusion", func(t *testing.T) {
		proven, _ := Solve(
			[]string{"∀x (P(x) → Q(x) ∨ R(x))", "P(A)", "¬Q(A)"},
			"R(A)",
		)
		assert.True(t, proven)
	})
}

func TestSolveParseFailure(t *testing.T) {
	t.Run("malformed premise stops the search with one log line", func(t *testing.T) {
		proven, log := Solve([]string{"Human(Socrates"}, "Mortal(Socrates)")
		assert.False(t, proven)
		require.Len(t, log, 1)
		assert.Contains(t, log[0], "Human(Socrates")
	})

	t.Run("malformed goal stops the search after logging accepted premises", func(t *testing.T) {
		proven, log := Solve([]string{"Human(Socrates)"}, "Mortal(Socrates")
		assert.False(t, proven)
		require.Len(t, log, 2) // one accepted premise clause, then the goal's parse error
		assert.Contains(t, log[1], "Mortal(Socrates")
	})
}

func assertLogContains(t *testing.T, log []string, fragment string) {
	t.Helper()
	for _, line := range log {
		if strings.Contains(line, fragment) {
			return
		}
	}
	t.Errorf("expected a log line containing %q, got:\n%s", fragment, strings.Join(log, "\n"))
}
