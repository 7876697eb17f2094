package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2rt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert HTML or Markdown files to rich text documents")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2rt help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2rt convert [flags] <input...>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert HTML or Markdown to rich text documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .html, .htm, .md or .markdown file, directory, or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -f, --format <s>             Output format: json, yaml, html, dump, tree")
	fmt.Fprintln(w, "      --indent <n>             Indentation for json and yaml (0-16)")
	fmt.Fprintln(w, "      --selector <css>         Convert only elements matching the selector")
	fmt.Fprintln(w, "      --base-url <url>         Resolve relative links and media against an absolute URL")
	fmt.Fprintln(w, "      --markdown               Treat every input as Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --whitespace <s>         Whitespace-only text: preserve, remove")
	fmt.Fprintln(w, "      --top-level-inlines <s>  Top-level inline nodes: preserve, remove, wrap")
	fmt.Fprintln(w, "      --top-level-text <s>     Top-level text nodes: preserve, remove, wrap")
	fmt.Fprintln(w, "      --tag <tag=type>         Map a tag to a node type, mark, unwrap or drop")
	fmt.Fprintln(w, "                               (repeatable, e.g. --tag div=paragraph)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Concurrency:")
	fmt.Fprintln(w, "      --async                  Convert sibling subtrees concurrently")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show sizes and timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: html2rt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: html2rt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
