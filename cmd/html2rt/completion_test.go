package main

// Notes:
// - GenerateCompletion: scripts are checked for content markers only. Running
//   them in a real shell would need integration tests per shell.
// - getCommands: flags come from newConvertFlagSet, so a flag added to convert
//   must show up here without touching the completion code.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_html2rt_completions",
				"complete -F _html2rt_completions html2rt",
				`compgen -W "convert version help completion"`,
				"--format|-f)",
				`compgen -W "json yaml html dump tree"`,
				`compgen -W "preserve remove wrap"`,
				"*.@(yaml|yml)",
				"*.@(html|htm|md|markdown)",
				"--base-url",
				`compgen -W "bash zsh fish"`,
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef html2rt",
				"_describe 'command' commands",
				"'convert:Convert HTML or Markdown files to rich text documents'",
				"_arguments",
				`'(-f --format)'{-f,--format}'`,
				":format:(json yaml html dump tree)",
				"'*--tag[",
				"'--async[",
				`_files -g "*.(html|htm|md|markdown)"`,
				"_values 'completion' bash zsh fish",
				"compdef _html2rt html2rt",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"function __fish_html2rt_needs_command",
				"function __fish_html2rt_using_command",
				"complete -c html2rt -f",
				"-a convert",
				"-s o -l output",
				"-l whitespace",
				"-x -a 'preserve remove'",
				"-s c -l config",
				"-x -a 'bash zsh fish'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) unexpected error: %v", tt.shell, err)
			}
			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q", want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "tcsh", "powershell", "BASH"} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
		}
		if buf.Len() != 0 {
			t.Errorf("GenerateCompletion(%q) wrote %d bytes, want none", shell, buf.Len())
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry built from the FlagSet
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	if got := strings.Join(commandNames(cmds), " "); got != "convert version help completion" {
		t.Fatalf("commands = %q, want convert version help completion", got)
	}

	flags := map[string]flagDef{}
	for _, f := range cmds[0].Flags {
		flags[f.Long] = f
	}

	tests := []struct {
		long       string
		short      string
		typ        flagType
		repeatable bool
	}{
		{long: "output", short: "o", typ: flagDir},
		{long: "format", short: "f", typ: flagEnum},
		{long: "config", short: "c", typ: flagFile},
		{long: "async", typ: flagBool},
		{long: "workers", short: "w", typ: flagInt},
		{long: "indent", typ: flagInt},
		{long: "selector", typ: flagString},
		{long: "base-url", typ: flagString},
		{long: "top-level-text", typ: flagEnum},
		{long: "tag", typ: flagString, repeatable: true},
	}

	for _, tt := range tests {
		f, ok := flags[tt.long]
		if !ok {
			t.Errorf("flag --%s missing from convert completion", tt.long)
			continue
		}
		if f.Short != tt.short || f.Type != tt.typ || f.Repeatable != tt.repeatable {
			t.Errorf("--%s = {short:%q type:%d repeatable:%t}, want {short:%q type:%d repeatable:%t}",
				tt.long, f.Short, f.Type, f.Repeatable, tt.short, tt.typ, tt.repeatable)
		}
	}

	if got := strings.Join(cmds[2].Args, " "); got != "convert version help completion" {
		t.Errorf("help args = %q, want every command", got)
	}
}

func TestGlobs(t *testing.T) {
	t.Parallel()

	if got := inputGlob(); got != "*.html,*.htm,*.md,*.markdown" {
		t.Errorf("inputGlob() = %q", got)
	}
	if got := bashGlob("*.yaml,*.yml"); got != "*.@(yaml|yml)" {
		t.Errorf("bashGlob() = %q", got)
	}
	if got := zshGlob("*.yaml,*.yml"); got != "*.(yaml|yml)" {
		t.Errorf("zshGlob() = %q", got)
	}
}
