// core.go — collection/value natives with no host dependency beyond
// the language's own value model (spec.md §4.8's native calling
// convention; grounded on the teacher's builtin_sys.go layout of one
// file per concern, registering flat global names).
package natives

import (
	"fmt"

	"github.com/imabd645/EZ-langauge"
)

func installCore(ip *ez.Interpreter) {
	ip.RegisterNative("size", 1, nativeSize)
	ip.RegisterNative("type", 1, nativeType)
	ip.RegisterNative("str", 1, nativeStr)
	ip.RegisterNative("num", 1, nativeNum)
	ip.RegisterNative("keys", 1, nativeKeys)
	ip.RegisterNative("values", 1, nativeValues)
	ip.RegisterNative("push", 2, nativePush)
	ip.RegisterNative("pop", 1, nativePop)
	ip.RegisterNative("hasKey", 2, nativeHasKey)
	ip.RegisterNative("removeKey", 2, nativeRemoveKey)
	ip.RegisterNative("copy", 1, nativeCopy)
	ip.RegisterNative("describe", 1, nativeDescribe)
}

func nativeSize(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	v := args[0]
	switch v.Tag {
	case ez.VString:
		return ez.NumberVal(float64(len([]rune(v.Str())))), nil
	case ez.VArray:
		return ez.NumberVal(float64(len(v.Array().Elements))), nil
	case ez.VDict:
		return ez.NumberVal(float64(len(v.Dict().Entries))), nil
	default:
		return ez.Nil, &ez.RuntimeError{Kind: ez.KindTypeError, Line: line, Column: 1,
			Msg: fmt.Sprintf("size() does not accept a %s", v.TypeName())}
	}
}

func nativeType(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	return ez.StringVal(args[0].TypeName()), nil
}

func nativeStr(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	return ez.StringVal(ez.ToDisplayString(args[0])), nil
}

func nativeNum(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	v := args[0]
	switch v.Tag {
	case ez.VNumber:
		return v, nil
	case ez.VString:
		var f float64
		if _, err := fmt.Sscanf(v.Str(), "%g", &f); err != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindTypeError, Line: line, Column: 1,
				Msg: fmt.Sprintf("cannot convert %q to a number", v.Str())}
		}
		return ez.NumberVal(f), nil
	case ez.VBool:
		if v.Bool() {
			return ez.NumberVal(1), nil
		}
		return ez.NumberVal(0), nil
	default:
		return ez.Nil, &ez.RuntimeError{Kind: ez.KindTypeError, Line: line, Column: 1,
			Msg: fmt.Sprintf("cannot convert a %s to a number", v.TypeName())}
	}
}

func nativeKeys(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	if args[0].Tag != ez.VDict {
		return ez.Nil, typeErr(line, "keys() requires a dictionary, got %s", args[0].TypeName())
	}
	out := make([]ez.Value, 0, len(args[0].Dict().Entries))
	for k := range args[0].Dict().Entries {
		out = append(out, ez.StringVal(k))
	}
	return ez.ArrayVal(out), nil
}

func nativeValues(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	if args[0].Tag != ez.VDict {
		return ez.Nil, typeErr(line, "values() requires a dictionary, got %s", args[0].TypeName())
	}
	out := make([]ez.Value, 0, len(args[0].Dict().Entries))
	for _, v := range args[0].Dict().Entries {
		out = append(out, v)
	}
	return ez.ArrayVal(out), nil
}

func nativePush(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	if args[0].Tag != ez.VArray {
		return ez.Nil, typeErr(line, "push() requires an array, got %s", args[0].TypeName())
	}
	arr := args[0].Array()
	arr.Elements = append(arr.Elements, args[1])
	return args[0], nil
}

func nativePop(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	if args[0].Tag != ez.VArray {
		return ez.Nil, typeErr(line, "pop() requires an array, got %s", args[0].TypeName())
	}
	arr := args[0].Array()
	if len(arr.Elements) == 0 {
		return ez.Nil, &ez.RuntimeError{Kind: ez.KindIndexOutOfBounds, Line: line, Column: 1, Msg: "pop() on an empty array"}
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

func nativeHasKey(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	if args[0].Tag != ez.VDict || args[1].Tag != ez.VString {
		return ez.Nil, typeErr(line, "hasKey() requires a dictionary and a string")
	}
	_, ok := args[0].Dict().Entries[args[1].Str()]
	return ez.BoolVal(ok), nil
}

func nativeRemoveKey(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	if args[0].Tag != ez.VDict || args[1].Tag != ez.VString {
		return ez.Nil, typeErr(line, "removeKey() requires a dictionary and a string")
	}
	delete(args[0].Dict().Entries, args[1].Str())
	return args[0], nil
}

// nativeCopy makes a shallow copy: a fresh array/dict holding the same
// element values, so adding, removing or replacing top-level entries of
// the copy leaves the original untouched. Nested arrays, dictionaries
// and instances are not copied and stay shared with the original.
func nativeCopy(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	switch v := args[0]; v.Tag {
	case ez.VArray:
		src := v.Array().Elements
		dst := make([]ez.Value, len(src))
		copy(dst, src)
		return ez.ArrayVal(dst), nil
	case ez.VDict:
		src := v.Dict().Entries
		dst := make(map[string]ez.Value, len(src))
		for k, vv := range src {
			dst[k] = vv
		}
		return ez.DictVal(dst), nil
	default:
		return v, nil
	}
}

// nativeDescribe returns a dictionary of member name -> "shown"/"hidden"
// for a model or instance, walking the parent chain so inherited members
// are included (the nearest declaration wins, same order FindMember
// walks in).
func nativeDescribe(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	var cls *ez.Class
	switch args[0].Tag {
	case ez.VClass:
		cls = args[0].Class()
	case ez.VInstance:
		cls = args[0].Instance().Class
	default:
		return ez.Nil, typeErr(line, "describe() requires a model or instance, got %s", args[0].TypeName())
	}

	out := make(map[string]ez.Value)
	for c := cls; c != nil; c = c.Parent {
		for name, mi := range c.Members {
			if _, seen := out[name]; seen {
				continue
			}
			vis := "hidden"
			if mi.Visible {
				vis = "shown"
			}
			out[name] = ez.StringVal(vis)
		}
	}
	return ez.DictVal(out), nil
}

func typeErr(line int, format string, args ...any) error {
	return &ez.RuntimeError{Kind: ez.KindTypeError, Line: line, Column: 1, Msg: fmt.Sprintf(format, args...)}
}
