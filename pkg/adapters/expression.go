package adapters

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// TraitSource is an owner whose attached traits feed expression environments.
type TraitSource interface {
	trait.Owner
	Traits() []trait.Trait
}

// Expression is an anonymous trait whose read delegate evaluates an expr
// program. The environment maps every attached trait's display name to its
// current value, so "Altitude * 2" or "Active && Physics" work as sources.
// Writes have no delegate and land in raw storage, which is also what a read
// returns when evaluation fails.
type Expression struct {
	*trait.Anonymous[any]
	src     TraitSource
	source  string
	program *vm.Program
	logger  *slog.Logger
}

// NewExpression compiles source and returns the trait named name.
// Returns ErrInvalidExpression if source is empty or does not compile.
func NewExpression(src TraitSource, name, source string, opts ...trait.Option) (*Expression, error) {
	if src == nil {
		return nil, types.ErrOwnerRequired
	}
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%s: %w: empty source", name, types.ErrInvalidExpression)
	}
	program, err := expr.Compile(source,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, types.ErrInvalidExpression, err)
	}

	e := &Expression{
		src:     src,
		source:  source,
		program: program,
		logger: slog.Default().With(
			slog.String("component", "trait.expression"),
			slog.String("trait", name),
		),
	}
	anon, err := trait.NewAnonymous[any](src, name, nil, e.eval, nil, opts...)
	if err != nil {
		return nil, err
	}
	e.Anonymous = anon
	return e, nil
}

// Source returns the expression text.
func (e *Expression) Source() string { return e.source }

func (e *Expression) eval() any {
	env := make(map[string]any)
	for _, t := range e.src.Traits() {
		if t.Name() == "" {
			continue
		}
		// Reading this trait from here is re-entrant and yields raw storage.
		env[t.Name()] = t.ValueAny()
	}
	out, err := expr.Run(e.program, env)
	if err != nil {
		e.logger.Warn("expression evaluation failed",
			slog.String("source", e.source),
			slog.String("error", err.Error()),
		)
		return e.Value()
	}
	return out
}
