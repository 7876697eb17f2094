package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		flags, positional, err := parseConvertFlags(args[1:], env.Stdout)
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			printConvertUsage(env.Stderr)
			return ExitUsage
		}
		if err := runConvert(ctx, positional, flags, env); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "completion":
		if err := runCompletion(args[1:], env); err != nil {
			fmt.Fprintln(env.Stderr, "Error:", err)
			printCompletionUsage(env.Stderr)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "html2rt %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	}

	fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnknownCommand, args[0])
	printUsage(env.Stderr)
	return exitCodeFor(ErrUnknownCommand)
}

func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
