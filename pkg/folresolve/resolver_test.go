package folresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClausePair(t *testing.T) {
	t.Run("produces the empty clause when the only two literals unify", func(t *testing.T) {
		c1 := NewClause([]string{"Mortal(Socrates)"})
		c2 := NewClause([]string{"¬Mortal(Socrates)"})
		resolvents, log := resolveClausePair(c1, c2)
		require.Len(t, resolvents, 1)
		assert.True(t, resolvents[0].IsEmpty())
		assert.NotEmpty(t, log)
	})

	t.Run("same-polarity literals never attempt unification", func(t *testing.T) {
		c1 := NewClause([]string{"P(A)"})
		c2 := NewClause([]string{"P(B)"})
		resolvents, log := resolveClausePair(c1, c2)
		assert.Empty(t, resolvents)
		assert.Empty(t, log)
	})

	t.Run("resolving leaves the remaining literals from both clauses", func(t *testing.T) {
		c1 := NewClause([]string{"¬Human(x)", "Mortal(x)"})
		c2 := NewClause([]string{"Human(Socrates)"})
		resolvents, _ := resolveClausePair(c1, c2)
		require.Len(t, resolvents, 1)
		assert.Equal(t, NewClause([]string{"Mortal(Socrates)"}), resolvents[0])
	})
}

func TestResolveDerivesEmptyClause(t *testing.T) {
	db := newClauseDatabase()
	db.add(NewClause([]string{"P(A)"}))
	db.add(NewClause([]string{"¬P(A)"}))

	proven, log := resolve(db)
	assert.True(t, proven)
	assert.NotEmpty(t, log)
}

func TestClauseDatabaseRejectsDuplicates(t *testing.T) {
	db := newClauseDatabase()
	assert.True(t, db.add(NewClause([]string{"P(x)"})))
	assert.False(t, db.add(NewClause([]string{"P(x)"})))
	assert.Len(t, db.snapshot(), 1)
}
