// jsonio.go — jsonEncode/jsonDecode over "encoding/json", the way the
// teacher's builtin_json.go also goes straight to the standard
// library (no third-party JSON package appears in the example pack).
package natives

import (
	"encoding/json"

	"github.com/imabd645/EZ-langauge"
)

func installJSON(ip *ez.Interpreter) {
	ip.RegisterNative("jsonEncode", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		data, err := json.Marshal(valueToAny(a[0]))
		if err != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: err.Error(), Wrapped: err}
		}
		return ez.StringVal(string(data)), nil
	})
	ip.RegisterNative("jsonDecode", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		s, err := wantString(a[0], l, "jsonDecode")
		if err != nil {
			return ez.Nil, err
		}
		var out any
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: err.Error(), Wrapped: err}
		}
		return anyToValue(out), nil
	})
}

// valueToAny converts an EZ Value to the json package's native Go
// representation.
func valueToAny(v ez.Value) any {
	switch v.Tag {
	case ez.VNil:
		return nil
	case ez.VBool:
		return v.Bool()
	case ez.VNumber:
		return v.Number()
	case ez.VString:
		return v.Str()
	case ez.VArray:
		elems := v.Array().Elements
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = valueToAny(e)
		}
		return out
	case ez.VDict:
		entries := v.Dict().Entries
		out := make(map[string]any, len(entries))
		for k, vv := range entries {
			out[k] = valueToAny(vv)
		}
		return out
	default:
		return ez.ToDisplayString(v)
	}
}

// anyToValue converts a json.Unmarshal result back into an EZ Value.
func anyToValue(x any) ez.Value {
	switch t := x.(type) {
	case nil:
		return ez.Nil
	case bool:
		return ez.BoolVal(t)
	case float64:
		return ez.NumberVal(t)
	case string:
		return ez.StringVal(t)
	case []any:
		out := make([]ez.Value, len(t))
		for i, e := range t {
			out[i] = anyToValue(e)
		}
		return ez.ArrayVal(out)
	case map[string]any:
		out := make(map[string]ez.Value, len(t))
		for k, v := range t {
			out[k] = anyToValue(v)
		}
		return ez.DictVal(out)
	default:
		return ez.Nil
	}
}
