package folresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermString(t *testing.T) {
	assert.Equal(t, "x", Variable{Name: "x"}.String())
	assert.Equal(t, "Socrates", Constant{Name: "Socrates"}.String())
	assert.Equal(t, "sk1(x,y)", FunctionTerm{
		Name: "sk1",
		Args: []Term{Variable{Name: "x"}, Variable{Name: "y"}},
	}.String())
}

func TestSubstituteTerm(t *testing.T) {
	t.Run("replaces a matching variable", func(t *testing.T) {
		result := substituteTerm(Variable{Name: "x"}, "x", Constant{Name: "sk1"})
		assert.Equal(t, Constant{Name: "sk1"}, result)
	})

	t.Run("recurses into function term arguments", func(t *testing.T) {
		in := FunctionTerm{Name: "f", Args: []Term{Variable{Name: "x"}, Variable{Name: "y"}}}
		result := substituteTerm(in, "x", Constant{Name: "A"})
		ft, ok := result.(FunctionTerm)
		assert.True(t, ok)
		assert.Equal(t, Constant{Name: "A"}, ft.Args[0])
		assert.Equal(t, Variable{Name: "y"}, ft.Args[1])
	})

	t.Run("leaves non-matching terms unchanged", func(t *testing.T) {
		result := substituteTerm(Constant{Name: "A"}, "x", Constant{Name: "B"})
		assert.Equal(t, Constant{Name: "A"}, result)
	})
}
