// Package natives is the native function boundary spec.md §4.8 carves
// out of the core interpreter: every host capability EZ scripts can
// reach (collections, strings, math, JSON, files, HTTP, terminal
// output) is registered here against an *ez.Interpreter rather than
// baked into the evaluator, grounded on the teacher's own split between
// interpreter.go (core) and its builtin_*.go files (host surface).
package natives

import "github.com/imabd645/EZ-langauge"

// Install registers every native group on ip. cmd/ez calls this once
// before running a program; tests that need a bare interpreter can skip
// it entirely.
func Install(ip *ez.Interpreter) {
	installCore(ip)
	installStrings(ip)
	installMathRand(ip)
	installJSON(ip)
	installFile(ip)
	installNet(ip)
	installTerm(ip)
	installSQLite(ip)
}
