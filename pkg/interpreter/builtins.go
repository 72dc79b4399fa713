package interpreter

import "math"

var builtins = []Function{
	{Name: "sin", Arity: 1, Impl: unary(math.Sin)},
	{Name: "cos", Arity: 1, Impl: unary(math.Cos)},
	{Name: "tan", Arity: 1, Impl: unary(math.Tan)},
	{Name: "sqrt", Arity: 1, Impl: unary(fnSqrt)},
	{Name: "abs", Arity: 1, Impl: unary(math.Abs)},
	{Name: "pow", Arity: 2, Impl: func(args []float64) float64 { return math.Pow(args[0], args[1]) }},
	{Name: "log", Arity: 1, Impl: unary(positive(math.Log))},
	{Name: "log10", Arity: 1, Impl: unary(positive(math.Log10))},
	{Name: "exp", Arity: 1, Impl: unary(math.Exp)},
	{Name: "floor", Arity: 1, Impl: unary(math.Floor)},
	{Name: "ceil", Arity: 1, Impl: unary(math.Ceil)},
	{Name: "min", Arity: Variadic, Impl: fnMin},
	{Name: "max", Arity: Variadic, Impl: fnMax},
}

func registerBuiltins(i *Interpreter) {
	for _, f := range builtins {
		i.funcs[f.Name] = f
	}
}

func unary(fn func(float64) float64) NativeFunc {
	return func(args []float64) float64 {
		return fn(args[0])
	}
}

// positive returns NaN outside the domain (0, +Inf) instead of -Inf
func positive(fn func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		if x <= 0 {
			return math.NaN()
		}
		return fn(x)
	}
}

func fnSqrt(x float64) float64 {
	if x < 0 {
		return math.NaN()
	}
	return math.Sqrt(x)
}

func fnMin(args []float64) float64 {
	if len(args) < 1 {
		return math.NaN()
	}

	m := args[0]
	for _, a := range args[1:] {
		if a < m {
			m = a
		}
	}
	return m
}

func fnMax(args []float64) float64 {
	if len(args) < 1 {
		return math.NaN()
	}

	m := args[0]
	for _, a := range args[1:] {
		if a > m {
			m = a
		}
	}
	return m
}
