package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(env.Stderr, isVerbose(os.Args[1:]))))

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches a command and returns the process exit code.
// A first argument ending in .ipynb is shorthand for "generate".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if strings.HasSuffix(strings.ToLower(cmd), ".ipynb") {
		cmd, rest = "generate", args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerateCmd(rest, env)
	case "themes":
		return runThemesCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "nb2beamer %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	case "completion":
		return runCompletionCmd(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// isVerbose reports whether -v or --verbose appears before a "--" terminator.
func isVerbose(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// maxprocsLogger returns a printf-style logger that writes to w when verbose
// and discards otherwise.
func maxprocsLogger(w io.Writer, verbose bool) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}
