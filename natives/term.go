// term.go — colorized console output, grounded on pterm the same way
// ComedicChimera-chai's src/logging/display.go uses it for
// PrintErrorMessage/PrintWarningMessage/PrintInfoMessage: distinct
// style constants per severity, rather than hand-rolled ANSI codes.
package natives

import (
	"github.com/pterm/pterm"

	"github.com/imabd645/EZ-langauge"
)

func installTerm(ip *ez.Interpreter) {
	ip.RegisterNative("printInfo", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		pterm.Info.Println(ez.ToDisplayString(a[0]))
		return ez.Nil, nil
	})
	ip.RegisterNative("printWarn", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		pterm.Warning.Println(ez.ToDisplayString(a[0]))
		return ez.Nil, nil
	})
	ip.RegisterNative("printError", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		pterm.Error.Println(ez.ToDisplayString(a[0]))
		return ez.Nil, nil
	})
	ip.RegisterNative("printSuccess", 1, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		pterm.Success.Println(ez.ToDisplayString(a[0]))
		return ez.Nil, nil
	})
	ip.RegisterNative("clearScreen", 0, func(ip *ez.Interpreter, a []ez.Value, l int) (ez.Value, error) {
		pterm.Print("\033[H\033[2J")
		return ez.Nil, nil
	})
}
