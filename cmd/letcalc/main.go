package main

import (
	"fmt"
	"os"

	"letcalc/interpreter-go/pkg/ast"
	"letcalc/interpreter-go/pkg/driver"
	"letcalc/interpreter-go/pkg/interpreter"
	"letcalc/interpreter-go/pkg/runtime"
)

const cliToolVersion = "letcalc-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runProgram(args[1:])
	case "check":
		return runCheck(args[1:])
	case "examples":
		return runExamples(args[1:])
	default:
		return runProgram(args)
	}
}

func runProgram(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "letcalc run requires exactly one program document")
		return 1
	}

	program, err := driver.LoadProgram(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
		return 1
	}

	val := interpreter.Evaluate(program.Term, runtime.NewEnvironment())
	fmt.Fprintln(os.Stdout, val)
	if val.Kind() == runtime.KindError {
		return 1
	}
	return 0
}

func runCheck(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "letcalc check requires one or more program documents")
		return 1
	}

	failures := 0
	for _, path := range args {
		program, err := driver.LoadProgram(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
			failures++
			continue
		}
		if program.Expect == nil {
			fmt.Fprintf(os.Stderr, "%s: no expect block to check against\n", path)
			failures++
			continue
		}

		got := interpreter.Evaluate(program.Term, runtime.NewEnvironment())
		label := program.Name
		if label == "" {
			label = path
		}
		if got == program.Expect {
			fmt.Fprintf(os.Stdout, "ok   %s => %s\n", label, got)
		} else {
			fmt.Fprintf(os.Stderr, "FAIL %s: got %s, want %s\n", label, got, program.Expect)
			failures++
		}
	}

	if failures > 0 {
		return 1
	}
	return 0
}

// The two reference programs shipped with the interpreter.
func exampleProgram() ast.Term {
	return ast.LetIn("x", ast.Num(2), ast.Sum(ast.ID("x"), ast.Num(3)))
}

func exampleProgram2() ast.Term {
	return ast.LetIn("x", ast.Num(2), ast.ID("x"))
}

func runExamples(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "letcalc examples takes no arguments")
		return 1
	}
	for _, term := range []ast.Term{exampleProgram(), exampleProgram2()} {
		fmt.Fprintln(os.Stdout, interpreter.Evaluate(term, runtime.NewEnvironment()))
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  letcalc run <file.yml>")
	fmt.Fprintln(os.Stderr, "  letcalc <file.yml>")
	fmt.Fprintln(os.Stderr, "  letcalc check <file.yml> ...")
	fmt.Fprintln(os.Stderr, "  letcalc examples")
}
