package folresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtom(t *testing.T) {
	t.Run("atom with a single constant argument", func(t *testing.T) {
		f, err := Parse("Human(Socrates)")
		require.NoError(t, err)
		atom, ok := f.(Atom)
		require.True(t, ok)
		assert.Equal(t, "Human", atom.Predicate)
		require.Len(t, atom.Args, 1)
		assert.Equal(t, "Socrates", atom.Args[0].String())
	})

	t.Run("bare token with no parentheses is accepted leniently", func(t *testing.T) {
		f, err := Parse("P")
		require.NoError(t, err)
		atom, ok := f.(Atom)
		require.True(t, ok)
		assert.Equal(t, "P", atom.Predicate)
		assert.Empty(t, atom.Args)
	})
}

func TestParseConnectives(t *testing.T) {
	t.Run("implication has the lowest precedence", func(t *testing.T) {
		f, err := Parse("A(x) → B(x) ∧ C(x)")
		require.NoError(t, err)
		impl, ok := f.(Implication)
		require.True(t, ok)
		_, ok = impl.Antecedent.(Atom)
		assert.True(t, ok)
		_, ok = impl.Consequent.(Conjunction)
		assert.True(t, ok)
	})

	t.Run("negation binds tighter than conjunction", func(t *testing.T) {
		f, err := Parse("¬P(x) ∧ Q(x)")
		require.NoError(t, err)
		conj, ok := f.(Conjunction)
		require.True(t, ok)
		require.Len(t, conj.Children, 2)
		_, ok = conj.Children[0].(Negation)
		assert.True(t, ok)
	})

	t.Run("quantifier binds a named variable over its body", func(t *testing.T) {
		f, err := Parse("∀x (Human(x) → Mortal(x))")
		require.NoError(t, err)
		u, ok := f.(Universal)
		require.True(t, ok)
		assert.Equal(t, "x", u.Var)
		_, ok = u.Body.(Implication)
		assert.True(t, ok)
	})

	t.Run("Cyrillic identifiers parse like any other identifier", func(t *testing.T) {
		f, err := Parse("∀человек (Человек(человек) → Смертен(человек))")
		require.NoError(t, err)
		u, ok := f.(Universal)
		require.True(t, ok)
		assert.Equal(t, "человек", u.Var)
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("empty input is a parse error", func(t *testing.T) {
		_, err := Parse("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("unmatched parenthesis is a parse error", func(t *testing.T) {
		_, err := Parse("Human(Socrates")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})
}
