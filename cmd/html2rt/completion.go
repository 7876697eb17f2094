package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	html2richtext "github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/config"
	"github.com/alnah/go-html2richtext/internal/fileutil"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells in help order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory or file
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long       string
	Short      string
	Type       flagType
	Desc       string
	Values     []string // enum values
	FileGlob   string   // comma-separated globs for file flags
	Repeatable bool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name     string
	Desc     string
	Flags    []flagDef
	FileGlob string   // positional file arguments, empty if none
	Args     []string // fixed positional values
}

// completionMeta holds completion hints that the FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

var (
	policyValues     = []string{string(html2richtext.PolicyPreserve), string(html2richtext.PolicyRemove), string(html2richtext.PolicyWrap)}
	whitespaceValues = []string{string(htmltree.WhitespacePreserve), string(htmltree.WhitespaceRemove)}
)

// flagCompletionMeta maps convert flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"format":            {Values: config.Formats},
	"whitespace":        {Values: whitespaceValues},
	"top-level-inlines": {Values: policyValues},
	"top-level-text":    {Values: policyValues},
	"config":            {FileGlob: "*.yaml,*.yml"},
	"output":            {IsDir: true},
}

// inputGlob matches the files convert accepts.
func inputGlob() string {
	exts := append(append([]string{}, fileutil.HTMLExtensions...), fileutil.MarkdownExtensions...)
	globs := make([]string, len(exts))
	for i, ext := range exts {
		globs[i] = "*" + ext
	}
	return strings.Join(globs, ",")
}

// extractFlags builds flag definitions from fs, enriched with flagCompletionMeta.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		case "stringArray":
			fd.Repeatable = true
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type, fd.Values = flagEnum, meta.Values
			case meta.FileGlob != "":
				fd.Type, fd.FileGlob = flagFile, meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// getCommands returns the command registry. Convert flags come from the
// same FlagSet the command parses.
func getCommands() []commandDef {
	shells := make([]string, len(Shells))
	for i, s := range Shells {
		shells[i] = string(s)
	}
	cmds := []commandDef{
		{
			Name:     "convert",
			Desc:     "Convert HTML or Markdown files to rich text documents",
			Flags:    extractFlags(newConvertFlagSet(&convertFlags{})),
			FileGlob: inputGlob(),
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script", Args: shells},
	}
	names := commandNames(cmds)
	for i := range cmds {
		if cmds[i].Name == "help" {
			cmds[i].Args = names
		}
	}
	return cmds
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(cmds)
	case ShellZsh:
		script = zshScript(cmds)
	case ShellFish:
		script = fishScript(cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2rt completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash    Bash completion script")
	fmt.Fprintln(w, "  zsh     Zsh completion script")
	fmt.Fprintln(w, "  fish    Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(html2rt completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(html2rt completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    html2rt completion fish > ~/.config/fish/completions/html2rt.fish")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for html2rt\n\n")
	b.WriteString("_html2rt_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 && c.FileGlob == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			var words []string
			for _, f := range c.Flags {
				names := "--" + f.Long
				words = append(words, "--"+f.Long)
				if f.Short != "" {
					names += "|-" + f.Short
					words = append(words, "-"+f.Short)
				}
				if f.Type == flagBool {
					continue
				}
				fmt.Fprintf(&b, "        %s)\n", names)
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -f -X '!%s' -- \"${cur}\"))\n", bashGlob(f.FileGlob))
				case flagDir:
					b.WriteString("            COMPREPLY=($(compgen -f -- \"${cur}\"))\n")
				}
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
			b.WriteString("        if [[ ${cur} == -* ]]; then\n")
			sort.Strings(words)
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(words, " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		switch {
		case c.FileGlob != "":
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -f -X '!%s' -- \"${cur}\") $(compgen -d -- \"${cur}\"))\n", bashGlob(c.FileGlob))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _html2rt_completions html2rt\n")
	return b.String()
}

// bashGlob turns "*.yaml,*.yml" into the extglob "*.@(yaml|yml)".
func bashGlob(glob string) string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(g, "*."))
	}
	return "*.@(" + strings.Join(exts, "|") + ")"
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef html2rt\n\n")
	b.WriteString("_html2rt() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 && c.FileGlob == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Flags) == 0 {
			fmt.Fprintf(&b, "        _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
			b.WriteString("        ;;\n")
			continue
		}
		specs := make([]string, 0, len(c.Flags)+1)
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		if c.FileGlob != "" {
			specs = append(specs, "'*:input:_files -g \""+zshGlob(c.FileGlob)+"\"'")
		}
		b.WriteString("        _arguments \\\n            ")
		b.WriteString(strings.Join(specs, " \\\n            "))
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _html2rt html2rt\n")
	return b.String()
}

// zshFlagSpec renders one _arguments spec for f.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"
	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":" + f.Long + ":_files -g \"" + zshGlob(f.FileGlob) + "\""
	case flagDir:
		action = ":" + f.Long + ":_files"
	default:
		action = ":" + f.Long + ": "
	}

	prefix := ""
	if f.Repeatable {
		prefix = "*"
	}
	if f.Short == "" {
		return "'" + prefix + "--" + f.Long + desc + action + "'"
	}
	exclusion := "(-" + f.Short + " --" + f.Long + ")"
	if f.Repeatable {
		exclusion = "*"
	}
	return "'" + exclusion + "'{-" + f.Short + ",--" + f.Long + "}'" + desc + action + "'"
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	return strings.Replace(bashGlob(glob), "@(", "(", 1)
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for html2rt\n\n")
	b.WriteString("function __fish_html2rt_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_html2rt_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c html2rt -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c html2rt -n __fish_html2rt_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := "'__fish_html2rt_using_command " + c.Name + "'"
		for _, f := range c.Flags {
			line := "complete -c html2rt -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + " -d '" + fishEscape(f.Desc) + "'"
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile, flagDir:
				line += " -r -F"
			default:
				line += " -x"
			}
			b.WriteString(line + "\n")
		}
		switch {
		case c.FileGlob != "":
			fmt.Fprintf(&b, "complete -c html2rt -n %s -F\n", cond)
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c html2rt -n %s -x -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}
	return b.String()
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
