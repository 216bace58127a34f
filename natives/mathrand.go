// mathrand.go — arithmetic and randomness natives over "math" and
// "math/rand", grounded the same way: the teacher reaches for stdlib
// here too (no arbitrary-precision or stats library appears anywhere
// in the example pack).
package natives

import (
	"math"
	"math/rand"

	"github.com/imabd645/EZ-langauge"
)

func installMathRand(ip *ez.Interpreter) {
	unary := func(name string, f func(float64) float64) {
		ip.RegisterNative(name, 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
			n, err := wantNumber(a[0], l, name)
			if err != nil {
				return ez.Nil, err
			}
			return ez.NumberVal(f(n)), nil
		})
	}
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("sqrt", math.Sqrt)
	unary("abs", math.Abs)

	ip.RegisterNative("pow", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		base, e1 := wantNumber(a[0], l, "pow")
		exp, e2 := wantNumber(a[1], l, "pow")
		if e1 != nil || e2 != nil {
			return ez.Nil, firstErr(e1, e2)
		}
		return ez.NumberVal(math.Pow(base, exp)), nil
	})
	ip.RegisterNative("min", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		x, e1 := wantNumber(a[0], l, "min")
		y, e2 := wantNumber(a[1], l, "min")
		if e1 != nil || e2 != nil {
			return ez.Nil, firstErr(e1, e2)
		}
		return ez.NumberVal(math.Min(x, y)), nil
	})
	ip.RegisterNative("max", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		x, e1 := wantNumber(a[0], l, "max")
		y, e2 := wantNumber(a[1], l, "max")
		if e1 != nil || e2 != nil {
			return ez.Nil, firstErr(e1, e2)
		}
		return ez.NumberVal(math.Max(x, y)), nil
	})
	// random(): float in [0,1). random(n): integer in [0,n).
	ip.RegisterNative("random", -1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		switch len(a) {
		case 0:
			return ez.NumberVal(rand.Float64()), nil
		case 1:
			n, err := wantNumber(a[0], l, "random")
			if err != nil {
				return ez.Nil, err
			}
			if n <= 0 {
				return ez.Nil, typeErr(l, "random() bound must be positive")
			}
			return ez.NumberVal(float64(rand.Intn(int(n)))), nil
		default:
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindArityMismatch, Line: l, Column: 1, Msg: "random() takes 0 or 1 arguments"}
		}
	})
}

func wantNumber(v ez.Value, line int, fn string) (float64, error) {
	if v.Tag != ez.VNumber {
		return 0, typeErr(line, "%s() requires a number, got %s", fn, v.TypeName())
	}
	return v.Number(), nil
}
