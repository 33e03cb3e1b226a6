// Command meowlisp is the interactive REPL driver.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"meowlisp/builtin"
	"meowlisp/eval"
	"meowlisp/reader"
	"meowlisp/value"
)

const (
	newPrompt  = "meowlisp> "
	contPrompt = "........> "

	banner = "Meowlisp Version 0.0.1"
	cat    = " \\    /\\ \n" +
		"  )  ( ')\n" +
		" (  /  ) \n" +
		"  \\(__)| \n"
	farewell = "Press Ctrl+c to Exit\n"

	historyFile = ".meowlisp-history.tmp"
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println(banner)
	fmt.Println(cat)
	fmt.Println(farewell)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	env := builtin.NewRootEnvironment()
	pending := ""

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending == "" {
				continue
			}
			pending = ""
			rl.SetPrompt(newPrompt)
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		pending += line + "\n"
		if !balanced(pending) {
			rl.SetPrompt(contPrompt)
			continue
		}
		rl.SetPrompt(newPrompt)

		src := pending
		pending = ""
		evalLine(env, src)
	}
}

// balanced reports whether every '(' and '{' opened in src has a matching
// close, so the REPL can prompt for a continuation line instead of handing
// the reader a guaranteed unexpected-EOF error.
func balanced(src string) bool {
	depth := 0
	for _, ch := range src {
		switch ch {
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		}
	}
	return depth <= 0
}

func evalLine(env *value.Environment, src string) {
	rd := reader.New(strings.NewReader(src), "<stdin>")
	root, err := rd.ReadAll()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, child := range root.Children {
		result := eval.Eval(env, reader.Convert(child))
		fmt.Println(result)
	}
}
