package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/internal/expr"
	"github.com/openfga/seqops/pkg/seq"
)

// NewWhereCommand returns the command that filters the sample products with a CEL
// expression, e.g. `seqops where 'units_in_stock > 0 && unit_price > 3.0'`.
func NewWhereCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "where <expression>",
		Short: "Filter the sample products with a CEL expression",
		Long: fmt.Sprintf(`Filter the sample products with a CEL expression.

The expression must evaluate to a bool. Available variables: %s (string), %s (int),
%s (double), %s (string).`, expr.VarName, expr.VarUnitsInStock, expr.VarUnitPrice, expr.VarCategory),
		Args: cobra.MinimumNArgs(1),
		RunE: where,
	}

	return cmd
}

func where(cmd *cobra.Command, args []string) error {
	filter, err := expr.CompileProductFilter(strings.Join(args, " "))
	if err != nil {
		return err
	}

	matched, err := seq.FilterErr(seq.Values(catalog.Default().Products), filter)
	if err != nil {
		return err
	}

	return writeProducts(cmd.OutOrStdout(), matched)
}

func writeProducts(w io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "no products matched")
		return err
	}

	for _, p := range products {
		_, err := fmt.Fprintf(w, "%s (%s): $%s, %d in stock\n", p.Name, p.Category, p.UnitPrice.StringFixed(2), p.UnitsInStock)
		if err != nil {
			return err
		}
	}

	return nil
}
