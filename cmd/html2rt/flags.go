package main

import (
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-html2richtext/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// treeFlags holds the conversion policy flags.
type treeFlags struct {
	whitespace      string
	topLevelInlines string
	topLevelText    string
	tags            []string // tag=type pairs
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	format   string
	indent   int
	selector string
	baseURL  string
	markdown bool
	async    bool
	workers  int
	tree     treeFlags

	set map[string]bool // flags given on the command line
}

// changed reports whether the named flag was given explicitly.
func (f *convertFlags) changed(name string) bool {
	return f.set[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show sizes and timing")
}

// addTreeFlags adds conversion policy flags to a FlagSet.
func addTreeFlags(fs *flag.FlagSet, f *treeFlags) {
	fs.StringVar(&f.whitespace, "whitespace", "", "whitespace-only text: preserve, remove")
	fs.StringVar(&f.topLevelInlines, "top-level-inlines", "", "top-level inline nodes: preserve, remove, wrap")
	fs.StringVar(&f.topLevelText, "top-level-text", "", "top-level text nodes: preserve, remove, wrap")
	fs.StringArrayVar(&f.tags, "tag", nil, "map a tag to a node type, mark, unwrap or drop (tag=type, repeatable)")
}

// newConvertFlagSet defines the convert command flags, bound to f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: "+strings.Join(config.Formats, ", "))
	fs.IntVar(&f.indent, "indent", 0, "indentation for json and yaml output")
	fs.StringVar(&f.selector, "selector", "", "CSS selector for the conversion root")
	fs.StringVar(&f.baseURL, "base-url", "", "absolute URL to resolve relative links and media against")
	fs.BoolVar(&f.markdown, "markdown", false, "treat every input as Markdown")
	fs.BoolVar(&f.async, "async", false, "convert sibling subtrees concurrently")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addTreeFlags(fs, &f.tree)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{set: map[string]bool{}}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
