// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package symbolic

import "math"

// Axis selects which basis component hati/hatj/hatk resolves to when an
// equation's right side is evaluated against a vector-valued field such
// as a body's position or velocity.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// baseConstants returns the built-in numeric constants every Environment
// starts with: pi and e. The three unit-basis tokens hati/hatj/hatk
// resolve to 1 along the axis being evaluated and 0 otherwise, which is
// why they are not plain map entries -- see axisConstant.
func baseConstants() map[string]float64 {
	return map[string]float64{
		"pi": math.Pi,
		"e":  math.E,
	}
}

// axisConstant resolves hati/hatj/hatk for the axis currently being
// evaluated. ok is false for any other name.
func axisConstant(name string, axis Axis) (float64, bool) {
	switch name {
	case "hati":
		if axis == AxisX {
			return 1, true
		}
		return 0, true
	case "hatj":
		if axis == AxisY {
			return 1, true
		}
		return 0, true
	case "hatk":
		if axis == AxisZ {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// baseFunctions returns the built-in mathematical functions every
// Environment starts with.
func baseFunctions() map[string]Function {
	unary := func(name string, f func(float64) float64) *BakedFunction {
		return &BakedFunction{Name: name, NArgs: 1, Call: func(args []float64) (float64, error) {
			return f(args[0]), nil
		}}
	}
	fns := map[string]Function{
		"sin":  unary("sin", math.Sin),
		"cos":  unary("cos", math.Cos),
		"tan":  unary("tan", math.Tan),
		"asin": unary("asin", math.Asin),
		"acos": unary("acos", math.Acos),
		"atan": unary("atan", math.Atan),
		"ln":   unary("ln", math.Log),
		"log2": unary("log2", math.Log2),
		"sqrt": unary("sqrt", math.Sqrt),
	}
	fns["log"] = &BakedFunction{Name: "log", NArgs: 1, Call: func(args []float64) (float64, error) {
		return math.Log10(args[0]), nil
	}}
	fns["nrt"] = &BakedFunction{Name: "nrt", NArgs: 2, Call: func(args []float64) (float64, error) {
		x, n := args[0], args[1]
		if x < 0 && math.Mod(n, 2) == 0 {
			return 0, &DomainError{Base: x, Exp: 1 / n}
		}
		return math.Copysign(math.Pow(math.Abs(x), 1/n), x), nil
	}}
	return fns
}
