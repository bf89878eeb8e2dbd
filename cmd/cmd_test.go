package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfga/seqops/internal/build"
	"github.com/openfga/seqops/internal/expr"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCommand()
	rootCmd.AddCommand(NewVersionCommand(), NewWhereCommand())
	rootCmd.SetArgs(args)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, build.ProjectName)
	require.Contains(t, out, build.Version)
	require.Contains(t, out, build.Commit)
}

func TestWhereCommand(t *testing.T) {
	t.Run("matching_products", func(t *testing.T) {
		out, err := execute(t, "where", "units_in_stock > 0 && unit_price > 3.0")
		require.NoError(t, err)
		require.Equal(t, "Mouse (Electronics): $25.00, 50 in stock\nTV (Electronics): $1500.00, 10 in stock\n", out)
	})

	t.Run("arguments_are_joined", func(t *testing.T) {
		out, err := execute(t, "where", "category", "==", `"Food"`)
		require.NoError(t, err)
		require.Equal(t, "Apple (Food): $2.50, 100 in stock\nBread (Food): $3.50, 0 in stock\n", out)
	})

	t.Run("no_match", func(t *testing.T) {
		out, err := execute(t, "where", `name == "Phone"`)
		require.NoError(t, err)
		require.Equal(t, "no products matched\n", out)
	})

	t.Run("non_bool_expression", func(t *testing.T) {
		_, err := execute(t, "where", "unit_price * 2.0")
		var compileErr *expr.CompilationError
		require.ErrorAs(t, err, &compileErr)
	})

	t.Run("missing_expression", func(t *testing.T) {
		_, err := execute(t, "where")
		require.Error(t, err)
	})
}
