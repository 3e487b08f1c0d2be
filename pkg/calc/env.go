// Package calc implements a runtime calculator: an environment of variables
// and registered functions, and an infix evaluator that tokenizes input and
// computes a float64 directly on an operator-precedence stack machine. It
// shares the named-constant table with the symbolic parser but none of its
// tree representation.
package calc

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/numina-labs/numina/pkg/mathutil"
)

// FuncImpl is the native implementation of a registered function. It is
// called with exactly the declared number of arguments.
type FuncImpl func(args []float64) float64

// Func is a function registered in an environment.
type Func struct {
	Name  string
	Arity int
	Impl  FuncImpl
}

// Env holds calculator state: user variables and registered functions.
// Named constants (pi, e, ...) are resolved from the shared table in
// mathutil and cannot be assigned to.
//
// An Env is not safe for concurrent use.
type Env struct {
	vars   map[string]float64
	funcs  map[string]Func
	logger *slog.Logger
}

// Config holds environment configuration.
type Config struct {
	// Builtins registers the standard function set (sin, cos, tan, sqrt,
	// log, ln, exp, pow, abs, min, max, floor, ceil, round).
	Builtins bool
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// NewEnv creates a calculator environment.
func NewEnv(cfg Config) *Env {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	env := &Env{
		vars:   make(map[string]float64),
		funcs:  make(map[string]Func),
		logger: logger,
	}
	if cfg.Builtins {
		env.registerBuiltins()
	}
	return env
}

// SetVar assigns a variable. Assigning a named constant is an error.
func (e *Env) SetVar(name string, value float64) error {
	if name == "" {
		return fmt.Errorf("empty variable name")
	}
	if _, ok := mathutil.LookupConstant(name); ok {
		return fmt.Errorf("cannot assign to constant %q", name)
	}
	e.vars[name] = value
	return nil
}

// Var returns the value of a variable or named constant.
func (e *Env) Var(name string) (float64, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	return mathutil.LookupConstant(name)
}

// VarNames returns the sorted names of user-assigned variables.
func (e *Env) VarNames() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterFunc registers a named function of fixed arity, replacing any
// previous registration under the same name.
func (e *Env) RegisterFunc(name string, arity int, impl FuncImpl) error {
	if name == "" {
		return fmt.Errorf("empty function name")
	}
	if arity < 0 {
		return fmt.Errorf("negative arity for function %q", name)
	}
	if impl == nil {
		return fmt.Errorf("nil implementation for function %q", name)
	}
	e.funcs[name] = Func{Name: name, Arity: arity, Impl: impl}
	e.logger.Debug("registered function", "name", name, "arity", arity)
	return nil
}

// Function returns a registered function by name.
func (e *Env) Function(name string) (Func, bool) {
	f, ok := e.funcs[name]
	return f, ok
}

// FuncNames returns the sorted names of registered functions.
func (e *Env) FuncNames() []string {
	names := make([]string, 0, len(e.funcs))
	for name := range e.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Env) registerBuiltins() {
	one := func(f func(float64) float64) FuncImpl {
		return func(args []float64) float64 { return f(args[0]) }
	}
	two := func(f func(float64, float64) float64) FuncImpl {
		return func(args []float64) float64 { return f(args[0], args[1]) }
	}

	_ = e.RegisterFunc("sin", 1, one(math.Sin))
	_ = e.RegisterFunc("cos", 1, one(math.Cos))
	_ = e.RegisterFunc("tan", 1, one(math.Tan))
	_ = e.RegisterFunc("sqrt", 1, one(math.Sqrt))
	_ = e.RegisterFunc("log", 1, one(math.Log10))
	_ = e.RegisterFunc("ln", 1, one(math.Log))
	_ = e.RegisterFunc("exp", 1, one(math.Exp))
	_ = e.RegisterFunc("abs", 1, one(math.Abs))
	_ = e.RegisterFunc("floor", 1, one(math.Floor))
	_ = e.RegisterFunc("ceil", 1, one(math.Ceil))
	_ = e.RegisterFunc("round", 1, one(math.Round))
	_ = e.RegisterFunc("pow", 2, two(math.Pow))
	_ = e.RegisterFunc("min", 2, two(math.Min))
	_ = e.RegisterFunc("max", 2, two(math.Max))
}
