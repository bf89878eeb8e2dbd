// Package expr compiles CEL expressions into product predicates usable with
// seq.FilterErr.
package expr

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

// ErrEvaluationFailed is wrapped by every error raised while evaluating a compiled
// expression.
var ErrEvaluationFailed = errors.New("failed to evaluate product filter")

// Variables available to product filter expressions.
const (
	VarName         = "name"
	VarUnitsInStock = "units_in_stock"
	VarUnitPrice    = "unit_price"
	VarCategory     = "category"
)

var productEnv *cel.Env

func init() {
	env, err := cel.NewEnv(
		cel.Variable(VarName, cel.StringType),
		cel.Variable(VarUnitsInStock, cel.IntType),
		cel.Variable(VarUnitPrice, cel.DoubleType),
		cel.Variable(VarCategory, cel.StringType),
		cel.CrossTypeNumericComparisons(true),
		cel.EagerlyValidateDeclarations(true),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to construct CEL product env: %v", err))
	}

	productEnv = env
}

// CompilationError is returned when an expression cannot be turned into a predicate.
type CompilationError struct {
	Expression string
	Cause      error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile product filter %q: %v", e.Expression, e.Cause)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}

// CompileProductFilter compiles expression into a predicate over products. The
// expression must evaluate to a bool.
func CompileProductFilter(expression string) (seq.FilterFunc[catalog.Product], error) {
	source := common.NewStringSource(expression, "where")
	ast, issues := productEnv.CompileSource(source)
	if issues != nil {
		if err := issues.Err(); err != nil {
			return nil, &CompilationError{Expression: expression, Cause: err}
		}
	}

	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return nil, &CompilationError{
			Expression: expression,
			Cause:      fmt.Errorf("expected a bool expression output, but got '%s'", ast.OutputType()),
		}
	}

	prg, err := productEnv.Program(ast)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Cause: err}
	}

	return func(p catalog.Product) (bool, error) {
		out, _, err := prg.Eval(map[string]any{
			VarName:         p.Name,
			VarUnitsInStock: int64(p.UnitsInStock),
			VarUnitPrice:    p.UnitPrice.InexactFloat64(),
			VarCategory:     p.Category,
		})
		if err != nil {
			return false, fmt.Errorf("%w: product %q: %v", ErrEvaluationFailed, p.Name, err)
		}

		matched, ok := out.Value().(bool)
		if !ok {
			return false, fmt.Errorf("%w: product %q: non-bool result %v", ErrEvaluationFailed, p.Name, out)
		}
		return matched, nil
	}, nil
}
