// function.go — first-class function and native-function values.
//
// A Function is a closure: parameters plus a body plus the environment
// in effect at definition time (spec.md §3 "Lifecycles": "closures
// retain the environment in effect at their definition"). Both lambdas
// and `task`-declared functions share this representation; only the
// construction site differs.
package ez

// Function is a user-defined closure (spec.md: Lambda / TaskStmt).
type Function struct {
	Name    string // "" for anonymous lambdas, used in error messages/recursion
	Params  []string
	Expr    Expression  // set when the body is a single `=>` expression
	Body    []Statement // set when the body is a `{ ... }` block
	Closure *Environment
	// Owner is set only for model methods/init (nil for plain tasks and
	// lambdas). It names the class the method body was declared on, so
	// a running self.super(...) call knows where to resume the search
	// (spec.md open question "super"; see SPEC_FULL.md §1).
	Owner *Class
}

// NativeFunction is a host-provided built-in, registered through
// DefineGlobal/RegisterNative (spec.md §4.8). Arity -1 marks a variadic
// native.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    func(ip *Interpreter, args []Value, line int) (Value, error)
}
