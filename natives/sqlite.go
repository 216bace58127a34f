// sqlite.go — the contract-only stub for the "SQLite" native group
// named in spec.md §1. No SQLite driver appears anywhere in the
// retrieved corpus (the teacher has no database dependency at all), so
// this registers the documented signatures without fabricating a
// dependency: every call raises a UserError naming the missing driver
// rather than silently no-opping.
package natives

import "github.com/imabd645/EZ-langauge"

func installSQLite(ip *ez.Interpreter) {
	ip.RegisterNative("sqliteOpen", 1, sqliteUnavailable)
	ip.RegisterNative("sqliteExec", -1, sqliteUnavailable)
	ip.RegisterNative("sqliteQuery", -1, sqliteUnavailable)
}

func sqliteUnavailable(ip *ez.Interpreter, args []ez.Value, line int) (ez.Value, error) {
	return ez.Nil, &ez.RuntimeError{
		Kind: ez.KindUserError,
		Line: line,
		Msg:  "sqlite natives are not wired in this build: no SQLite driver is available to EZ",
	}
}
