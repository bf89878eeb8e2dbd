package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

func TestCompileProductFilter(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   []string
	}{
		{
			name:       "out_of_stock",
			expression: "units_in_stock == 0",
			expected:   []string{"Laptop", "Bread"},
		},
		{
			name:       "in_stock_and_expensive",
			expression: "units_in_stock > 0 && unit_price > 3",
			expected:   []string{"Mouse", "TV"},
		},
		{
			name:       "string_functions",
			expression: `category == "Food" && name.startsWith("A")`,
			expected:   []string{"Apple"},
		},
		{
			name:       "nothing_matches",
			expression: "unit_price > 10000.0",
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileProductFilter(tt.expression)
			require.NoError(t, err)

			products, err := seq.FilterErr(seq.Values(catalog.Default().Products), filter)
			require.NoError(t, err)

			var names []string
			for _, p := range products {
				names = append(names, p.Name)
			}
			require.Equal(t, tt.expected, names)
		})
	}
}

func TestCompileProductFilterErrors(t *testing.T) {
	t.Run("syntax_error", func(t *testing.T) {
		_, err := CompileProductFilter("units_in_stock ==")
		var compileErr *CompilationError
		require.ErrorAs(t, err, &compileErr)
		require.Equal(t, "units_in_stock ==", compileErr.Expression)
	})

	t.Run("undeclared_variable", func(t *testing.T) {
		_, err := CompileProductFilter("colour == 'red'")
		require.Error(t, err)
	})

	t.Run("non_bool_output", func(t *testing.T) {
		_, err := CompileProductFilter("unit_price * 2.0")
		require.ErrorContains(t, err, "expected a bool expression output")
	})
}

func TestEvaluationErrorPropagates(t *testing.T) {
	filter, err := CompileProductFilter("units_in_stock / (units_in_stock - units_in_stock) > 0")
	require.NoError(t, err)

	products, err := seq.FilterErr(seq.Values(catalog.Default().Products), filter)
	require.ErrorIs(t, err, ErrEvaluationFailed)
	require.ErrorContains(t, err, `"Laptop"`)
	require.Nil(t, products)
}
