// value.go — the runtime value model (spec.md §3).
//
// Value is a tagged union, grounded on the teacher's Value{Tag, Data}
// shape (interpreter.go) but simplified to the tag set spec.md actually
// names: nil, bool, number, string, array, dictionary, function,
// native-function, class, instance. Heap-shaped kinds (string, array,
// dictionary, function, class, instance) are shared by reference — Data
// holds a pointer/slice/map for those, a plain Go scalar for bool/number.
package ez

import "fmt"

// ValueTag discriminates the active case of a Value.
type ValueTag int

const (
	VNil ValueTag = iota
	VBool
	VNumber
	VString
	VArray
	VDict
	VFunction
	VNative
	VClass
	VInstance
)

// Value is the universal runtime carrier.
//
// Data holds, per Tag:
//
//	VNil      nil
//	VBool     bool
//	VNumber   float64
//	VString   string
//	VArray    *ArrayObject
//	VDict     *DictObject
//	VFunction *Function
//	VNative   *NativeFunction
//	VClass    *Class
//	VInstance *Instance
type Value struct {
	Tag  ValueTag
	Data any
}

// ArrayObject is the heap representation of an array value; wrapping the
// slice in a pointer struct is what makes "mutation through one handle
// visible through all" (spec.md §3) true for Go's value-typed slices.
type ArrayObject struct {
	Elements []Value
}

// DictObject is the heap representation of a dictionary value. Keys are
// always strings (spec.md §4.4: "its string form is the key").
type DictObject struct {
	Entries map[string]Value
}

var Nil = Value{Tag: VNil}

func BoolVal(b bool) Value   { return Value{Tag: VBool, Data: b} }
func NumberVal(n float64) Value { return Value{Tag: VNumber, Data: n} }
func StringVal(s string) Value  { return Value{Tag: VString, Data: s} }

func ArrayVal(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Tag: VArray, Data: &ArrayObject{Elements: elems}}
}

func DictVal(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{Tag: VDict, Data: &DictObject{Entries: entries}}
}

func FunctionVal(f *Function) Value       { return Value{Tag: VFunction, Data: f} }
func NativeVal(n *NativeFunction) Value   { return Value{Tag: VNative, Data: n} }
func ClassVal(c *Class) Value             { return Value{Tag: VClass, Data: c} }
func InstanceVal(i *Instance) Value       { return Value{Tag: VInstance, Data: i} }

func (v Value) IsNil() bool { return v.Tag == VNil }

func (v Value) Bool() bool     { return v.Data.(bool) }
func (v Value) Number() float64 { return v.Data.(float64) }
func (v Value) Str() string    { return v.Data.(string) }
func (v Value) Array() *ArrayObject { return v.Data.(*ArrayObject) }
func (v Value) Dict() *DictObject   { return v.Data.(*DictObject) }
func (v Value) Function() *Function { return v.Data.(*Function) }
func (v Value) Native() *NativeFunction { return v.Data.(*NativeFunction) }
func (v Value) Class() *Class       { return v.Data.(*Class) }
func (v Value) Instance() *Instance { return v.Data.(*Instance) }

// Callable reports whether v can appear as the callee of a CallExpr.
func (v Value) Callable() bool {
	switch v.Tag {
	case VFunction, VNative, VClass:
		return true
	default:
		return false
	}
}

// TypeName is used in TypeError messages.
func (v Value) TypeName() string {
	switch v.Tag {
	case VNil:
		return "nil"
	case VBool:
		return "bool"
	case VNumber:
		return "number"
	case VString:
		return "string"
	case VArray:
		return "array"
	case VDict:
		return "dictionary"
	case VFunction, VNative:
		return "function"
	case VClass:
		return "model"
	case VInstance:
		return "instance of " + v.Instance().Class.Name
	default:
		return "value"
	}
}

// Truthy implements spec.md §3's truthiness law: nil and false are
// false; everything else — including 0, "", [] — is true.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VNil:
		return false
	case VBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal implements spec.md §3's equality rule: structural for
// nil/bool/number/string and element-wise-recursive arrays; reference
// identity for instances, dictionaries, functions and classes.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VNil:
		return true
	case VBool:
		return a.Bool() == b.Bool()
	case VNumber:
		return a.Number() == b.Number()
	case VString:
		return a.Str() == b.Str()
	case VArray:
		ax, bx := a.Array().Elements, b.Array().Elements
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !Equal(ax[i], bx[i]) {
				return false
			}
		}
		return true
	case VDict:
		return a.Data.(*DictObject) == b.Data.(*DictObject)
	case VFunction:
		return a.Data.(*Function) == b.Data.(*Function)
	case VNative:
		return a.Data.(*NativeFunction) == b.Data.(*NativeFunction)
	case VClass:
		return a.Data.(*Class) == b.Data.(*Class)
	case VInstance:
		return a.Data.(*Instance) == b.Data.(*Instance)
	default:
		return false
	}
}

// ToDisplayString is the `out`/string-concatenation conversion (spec.md
// §3: "integer-valued numbers print without a decimal point").
func ToDisplayString(v Value) string {
	switch v.Tag {
	case VNil:
		return "nil"
	case VBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case VNumber:
		return formatNumber(v.Number())
	case VString:
		return v.Str()
	case VArray:
		elems := v.Array().Elements
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = inspectString(e)
		}
		return "[" + joinStrings(parts, ", ") + "]"
	case VDict:
		d := v.Dict()
		parts := make([]string, 0, len(d.Entries))
		for k, vv := range d.Entries {
			parts = append(parts, fmt.Sprintf("%s: %s", k, inspectString(vv)))
		}
		return "{" + joinStrings(parts, ", ") + "}"
	case VFunction, VNative:
		return "<function>"
	case VClass:
		return "<model " + v.Class().Name + ">"
	case VInstance:
		return "<instance of " + v.Instance().Class.Name + ">"
	default:
		return "<value>"
	}
}

// inspectString renders a value the way it should look *nested inside*
// another value's display string (strings get quoted there, unlike at
// the top level where `out "hi"` prints `hi` bare).
func inspectString(v Value) string {
	if v.Tag == VString {
		return fmt.Sprintf("%q", v.Str())
	}
	return ToDisplayString(v)
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

func joinStrings(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}
