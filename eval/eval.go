package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-rtti/debug"
	"github.com/signadot/tony-format/go-rtti/meta"

	"github.com/expr-lang/expr"
)

var ErrEval = errors.New("eval error")

// Eval evaluates expression with the fields and methods of a in scope.
//
//	eval.Eval(`sex == "Female" && height > 1.5`, person)
func Eval(expression string, a meta.Any) (any, error) {
	env, err := EnvOf(a)
	if err != nil {
		return nil, err
	}
	return EvalEnv(expression, env)
}

// EvalEnv evaluates expression in env.
func EvalEnv(expression string, env Env) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q", expression)
	}
	prg, err := expr.Compile(expression, expr.Env(map[string]any(env)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.LogAny(res)
	}
	return res, nil
}
