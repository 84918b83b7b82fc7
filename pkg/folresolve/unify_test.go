package folresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyLiterals(t *testing.T) {
	t.Run("variable binds to constant", func(t *testing.T) {
		sigma, ok := unifyLiterals("Human(x)", "Human(Socrates)")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"x": "Socrates"}, sigma)
	})

	t.Run("two distinct constants do not unify", func(t *testing.T) {
		_, ok := unifyLiterals("Flies(Penguin)", "Flies(Eagle)")
		assert.False(t, ok)
	})

	t.Run("different predicate names do not unify", func(t *testing.T) {
		_, ok := unifyLiterals("Human(x)", "Mortal(x)")
		assert.False(t, ok)
	})

	t.Run("different arity does not unify", func(t *testing.T) {
		_, ok := unifyLiterals("P(x)", "P(x,y)")
		assert.False(t, ok)
	})

	t.Run("identical arguments need no binding", func(t *testing.T) {
		sigma, ok := unifyLiterals("P(a)", "P(a)")
		require.True(t, ok)
		assert.Empty(t, sigma)
	})

	t.Run("negation marker is stripped before comparison", func(t *testing.T) {
		sigma, ok := unifyLiterals("¬Human(x)", "Human(Socrates)")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"x": "Socrates"}, sigma)
	})

	t.Run("Cyrillic predicate and argument tokens unify like any other", func(t *testing.T) {
		sigma, ok := unifyLiterals("Человек(x)", "Человек(Сократ)")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"x": "Сократ"}, sigma)
	})
}

func TestApplySubstToLiteral(t *testing.T) {
	t.Run("substitutes a bound argument and preserves polarity", func(t *testing.T) {
		out, err := applySubstToLiteral("¬Mortal(x)", map[string]string{"x": "Socrates"})
		require.NoError(t, err)
		assert.Equal(t, "¬Mortal(Socrates)", out)
	})

	t.Run("leaves unbound arguments untouched", func(t *testing.T) {
		out, err := applySubstToLiteral("P(y)", map[string]string{"x": "A"})
		require.NoError(t, err)
		assert.Equal(t, "P(y)", out)
	})

	t.Run("malformed literal surfaces UnifierParseError", func(t *testing.T) {
		_, err := applySubstToLiteral("not-a-literal", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnifierParse)
	})
}
