// Command ez is the EZ interpreter front end: a script runner and a
// line-editing REPL (spec.md §6). Grounded on the teacher's
// cmd/msg/main.go shape (liner-backed history, Ctrl+C/Ctrl+D handling,
// colorized error output) adapted to EZ's own pipeline and natives.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pelletier/go-toml"
	"github.com/peterh/liner"
	"github.com/pterm/pterm"

	"github.com/imabd645/EZ-langauge"
	"github.com/imabd645/EZ-langauge/natives"
)

const (
	appName     = "ez"
	version     = "0.1.0"
	historyFile = ".ez_history"
	promptMain  = "ez> "
	promptCont  = "... "
)

// config is the optional ez.toml project file: default library search
// roots plus a color on/off switch, read the way chai's configuration
// layer reads project TOML (src/go.mod: github.com/pelletier/go-toml).
// Color is parsed but nothing in the front end reads it; output is
// always colorized by pterm.
type config struct {
	LibPaths []string `toml:"lib_paths"`
	Color    bool     `toml:"color"`
}

func loadConfig(path string) config {
	cfg := config{Color: true}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		pterm.Warning.Printfln("ignoring malformed %s: %v", path, err)
	}
	return cfg
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCmd(os.Args[2:])
	case "repl":
		replCmd(os.Args[2:])
	case "-version", "--version", "version":
		fmt.Printf("%s %s\n", appName, version)
	case "-h", "--help", "help":
		printUsage()
	default:
		// Bare `ez file.ez` is shorthand for `ez run file.ez`.
		if strings.HasSuffix(os.Args[1], ".ez") {
			runCmd(os.Args[1:])
			return
		}
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ez - the EZ language interpreter

Usage:
  ez run <file.ez> [-lib dir]...   Execute a script
  ez repl [-lib dir]...            Start an interactive session
  ez -version                     Print the interpreter version
  ez -h                           Show this help text`)
}

type libFlags []string

func (l *libFlags) String() string     { return strings.Join(*l, ",") }
func (l *libFlags) Set(v string) error { *l = append(*l, v); return nil }

func newInterpreter(libs []string) *ez.Interpreter {
	cfg := loadConfig("ez.toml")
	roots := append([]string{}, libs...)
	roots = append(roots, cfg.LibPaths...)

	ip := ez.NewInterpreter()
	ip.Resolver = ez.NewResolver(roots...)
	natives.Install(ip)
	return ip
}

func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var libs libFlags
	fs.Var(&libs, "lib", "additional module search root (repeatable)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		pterm.Error.Println("ez run: missing script path")
		os.Exit(1)
	}
	path := fs.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Printfln("cannot read %s: %v", path, err)
		os.Exit(1)
	}

	ip := newInterpreter(libs)
	if exitCode := runSource(ip, string(src), path); exitCode != 0 {
		os.Exit(exitCode)
	}
}

// runSource parses and executes src, printing a caret-annotated
// diagnostic and returning a non-zero status on failure.
func runSource(ip *ez.Interpreter, src, name string) int {
	stmts, errs := ez.Parse(src)
	if len(errs) > 0 {
		for _, e := range errs {
			pterm.Error.Println(ez.WrapErrorWithName(e, name, src).Error())
		}
		return 1
	}
	if err := ip.Run(stmts); err != nil {
		pterm.Error.Println(ez.WrapErrorWithName(err, name, src).Error())
		return 1
	}
	return 0
}

func replCmd(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	var libs libFlags
	fs.Var(&libs, "lib", "additional module search root (repeatable)")
	fs.Parse(args)

	ip := newInterpreter(libs)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFilePath()
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	go func() {
		for range sigCh {
			// liner already intercepts Ctrl+C per-line; nothing else to do.
		}
	}()

	pterm.FgCyan.Printfln("EZ %s REPL. Ctrl+D to exit.", version)

	var pending strings.Builder
	for {
		prompt := promptMain
		if pending.Len() > 0 {
			prompt = promptCont
		}
		text, err := line.Prompt(prompt)
		if err != nil { // io.EOF on Ctrl+D, or liner.ErrPromptAborted on Ctrl+C
			break
		}
		line.AppendHistory(text)
		pending.WriteString(text)
		pending.WriteString("\n")

		src := pending.String()
		stmts, errs := ez.Parse(src)
		if len(errs) > 0 && needsMoreInput(text) {
			continue // let the user finish an open brace/paren
		}
		pending.Reset()
		if len(errs) > 0 {
			for _, e := range errs {
				pterm.Error.Println(ez.WrapErrorWithName(e, "<repl>", src).Error())
			}
			continue
		}
		if err := ip.Run(stmts); err != nil {
			pterm.Error.Println(ez.WrapErrorWithName(err, "<repl>", src).Error())
		}
	}

	if f, err := os.Create(historyPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

// needsMoreInput is a light heuristic: an unbalanced '{'/'['/'(' at the
// end of a REPL line usually means the user is still typing a block.
func needsMoreInput(lastLine string) bool {
	depth := 0
	for _, ch := range lastLine {
		switch ch {
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
		}
	}
	return depth > 0
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
