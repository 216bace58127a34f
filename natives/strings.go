// strings.go — string natives over the standard library's "strings"
// package, the same way the teacher's builtin_sys.go leans on stdlib
// for string munging rather than reaching for a third-party string
// toolkit (none appears anywhere in the example pack either).
package natives

import (
	"strings"

	"github.com/imabd645/EZ-langauge"
)

func installStrings(ip *ez.Interpreter) {
	ip.RegisterNative("upper", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, err := wantString(a[0], l, "upper")
		if err != nil {
			return ez.Nil, err
		}
		return ez.StringVal(strings.ToUpper(s)), nil
	})
	ip.RegisterNative("lower", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, err := wantString(a[0], l, "lower")
		if err != nil {
			return ez.Nil, err
		}
		return ez.StringVal(strings.ToLower(s)), nil
	})
	ip.RegisterNative("trim", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, err := wantString(a[0], l, "trim")
		if err != nil {
			return ez.Nil, err
		}
		return ez.StringVal(strings.TrimSpace(s)), nil
	})
	ip.RegisterNative("split", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, err := wantString(a[0], l, "split")
		if err != nil {
			return ez.Nil, err
		}
		sep, err := wantString(a[1], l, "split")
		if err != nil {
			return ez.Nil, err
		}
		parts := strings.Split(s, sep)
		out := make([]ez.Value, len(parts))
		for i, p := range parts {
			out[i] = ez.StringVal(p)
		}
		return ez.ArrayVal(out), nil
	})
	ip.RegisterNative("join", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		if a[0].Tag != ez.VArray {
			return ez.Nil, typeErr(l, "join() requires an array as its first argument")
		}
		sep, err := wantString(a[1], l, "join")
		if err != nil {
			return ez.Nil, err
		}
		parts := make([]string, len(a[0].Array().Elements))
		for i, e := range a[0].Array().Elements {
			parts[i] = ez.ToDisplayString(e)
		}
		return ez.StringVal(strings.Join(parts, sep)), nil
	})
	ip.RegisterNative("replace", 3, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, e1 := wantString(a[0], l, "replace")
		old, e2 := wantString(a[1], l, "replace")
		new_, e3 := wantString(a[2], l, "replace")
		if e1 != nil || e2 != nil || e3 != nil {
			return ez.Nil, firstErr(e1, e2, e3)
		}
		return ez.StringVal(strings.ReplaceAll(s, old, new_)), nil
	})
	ip.RegisterNative("splitChars", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, err := wantString(a[0], l, "splitChars")
		if err != nil {
			return ez.Nil, err
		}
		runes := []rune(s)
		out := make([]ez.Value, len(runes))
		for i, r := range runes {
			out[i] = ez.StringVal(string(r))
		}
		return ez.ArrayVal(out), nil
	})
}

func wantString(v ez.Value, line int, fn string) (string, error) {
	if v.Tag != ez.VString {
		return "", typeErr(line, "%s() requires a string, got %s", fn, v.TypeName())
	}
	return v.Str(), nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
