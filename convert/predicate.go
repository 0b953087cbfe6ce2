package convert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/json2kdl/tree"
)

// Predicate is a compiled boolean expression over an input node.
//
// The expression sees these variables:
//
//	name        string
//	type        string, or nil when the node has no type
//	arguments   []any
//	properties  map[string]any
//	children    []any
//	depth       int, 0 for top-level nodes
type Predicate struct {
	source  string
	program *vm.Program
}

// CompilePredicate compiles src. An empty (or blank) source yields a nil
// predicate, which matches every node.
func CompilePredicate(src string) (*Predicate, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	program, err := expr.Compile(src, expr.Env(predicateEnv(nil, 0)), expr.AsBool())
	if err != nil {
		return nil, ErrPredicate.Wrap(err).
			With(slog.String("source", src))
	}

	return &Predicate{source: src, program: program}, nil
}

// Match reports whether the node obj at the given depth satisfies p.
func (p *Predicate) Match(obj *tree.Object, depth int) (bool, error) {
	if p == nil {
		return true, nil
	}

	out, err := vm.Run(p.program, predicateEnv(obj, depth))
	if err != nil {
		return false, ErrPredicate.Wrap(err).
			With(slog.String("source", p.source))
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, ErrPredicate.With(
			slog.String("source", p.source),
			slog.String("result", fmt.Sprintf("%T", out)),
		)
	}

	return ok, nil
}

// String returns the expression source.
func (p *Predicate) String() string {
	if p == nil {
		return ""
	}

	return p.source
}

// predicateEnv builds the expression environment for obj. A nil obj gives
// the type exemplars used at compile time.
func predicateEnv(obj *tree.Object, depth int) map[string]any {
	field := func(key string) any {
		v, ok := obj.Get(key)
		if !ok {
			return nil
		}

		return tree.Native(v)
	}

	env := map[string]any{
		"name":       "",
		"type":       field(typeKey),
		"arguments":  []any{},
		"properties": map[string]any{},
		"children":   []any{},
		"depth":      depth,
	}

	if s, ok := field(nameKey).(string); ok {
		env["name"] = s
	}

	if a, ok := field(argumentsKey).([]any); ok {
		env["arguments"] = a
	}

	if m, ok := field(propertiesKey).(map[string]any); ok {
		env["properties"] = m
	}

	if c, ok := field(childrenKey).([]any); ok {
		env["children"] = c
	}

	return env
}
