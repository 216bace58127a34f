// fileio.go — readFile/writeFile/appendFile/fileExists over "os",
// grounded on the teacher's builtin_file.go which does the same thing
// against the same package.
package natives

import (
	"os"

	"github.com/imabd645/EZ-langauge"
)

func installFile(ip *ez.Interpreter) {
	ip.RegisterNative("readFile", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		path, err := wantString(a[0], l, "readFile")
		if err != nil {
			return ez.Nil, err
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: rerr.Error(), Wrapped: rerr}
		}
		return ez.StringVal(string(data)), nil
	})
	ip.RegisterNative("writeFile", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		path, e1 := wantString(a[0], l, "writeFile")
		content, e2 := wantString(a[1], l, "writeFile")
		if e1 != nil || e2 != nil {
			return ez.Nil, firstErr(e1, e2)
		}
		if werr := os.WriteFile(path, []byte(content), 0o644); werr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: werr.Error(), Wrapped: werr}
		}
		return ez.Nil, nil
	})
	ip.RegisterNative("appendFile", 2, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		path, e1 := wantString(a[0], l, "appendFile")
		content, e2 := wantString(a[1], l, "appendFile")
		if e1 != nil || e2 != nil {
			return ez.Nil, firstErr(e1, e2)
		}
		f, oerr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if oerr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: oerr.Error(), Wrapped: oerr}
		}
		defer f.Close()
		if _, werr := f.WriteString(content); werr != nil {
			return ez.Nil, &ez.RuntimeError{Kind: ez.KindImportError, Line: l, Column: 1, Msg: werr.Error(), Wrapped: werr}
		}
		return ez.Nil, nil
	})
	ip.RegisterNative("fileExists", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		path, err := wantString(a[0], l, "fileExists")
		if err != nil {
			return ez.Nil, err
		}
		_, serr := os.Stat(path)
		return ez.BoolVal(serr == nil), nil
	})
}
