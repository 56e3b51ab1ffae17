package main

// Notes:
// - GenerateCompletion: we check the scripts for content markers. Running
//   them in the target shells would need integration tests with real shells.
// - getCommands: flag definitions come from the real FlagSets, so the tests
//   check types and metadata rather than repeating every flag.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func findCommand(t *testing.T, name string) commandDef {
	t.Helper()

	for _, c := range getCommands() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("command %q not found", name)
	return commandDef{}
}

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
				"_nb2beamer_completions",
				"complete -F _nb2beamer_completions nb2beamer",
				"generate|*.ipynb)",
				"--output|-o)",
				"compgen -W 'cu fiu mit stanford'",
				"compgen -f -X '!*.yaml'",
				"compgen -f -X '!*.ipynb'",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef nb2beamer",
				"_describe -t commands 'nb2beamer command' commands",
				"_arguments",
				"'(-t --theme)'{-t,--theme}'[theme key (default \"cu\")]:theme:(cu fiu mit stanford)'",
				"'(-o --output)'{-o,--output}'",
				":directory:_files -/'",
				"'--yaml[print themes as a config themes\\: section]'",
				`'1:file:_files -g "*.ipynb"'`,
				"'2:value:(cu fiu mit stanford)'",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c nb2beamer -f",
				"__fish_nb2beamer_needs_command",
				"__fish_nb2beamer_using_command generate",
				"-s t -l theme -x -a 'cu fiu mit stanford'",
				"-l json -d 'print the report as JSON'",
				"(__fish_complete_suffix .ipynb)",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter -Native -CommandName nb2beamer",
				"CompletionResult",
				"'--theme' = @('cu', 'fiu', 'mit', 'stanford')",
				"'completion' = @('bash', 'zsh', 'fish', 'powershell')",
				"if ($cmd -like '*.ipynb') { $cmd = 'generate' }",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, c := range getCommands() {
				if !strings.Contains(output, c.Name) {
					t.Errorf("output missing command %q", c.Name)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"", "unknown", "sh", "ksh"} {
		shell := shell
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, shell)
			if !errors.Is(err, ErrUnsupportedShell) {
				t.Fatalf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
			}
			if buf.Len() != 0 {
				t.Errorf("GenerateCompletion(%q) wrote output on error", shell)
			}
		})
	}
}

func TestRunMain_Completion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"usage without shell", nil, ExitSuccess, "Usage: nb2beamer completion <shell>", ""},
		{"bash", []string{"bash"}, ExitSuccess, "_nb2beamer_completions", ""},
		{"zsh", []string{"zsh"}, ExitSuccess, "#compdef nb2beamer", ""},
		{"fish", []string{"fish"}, ExitSuccess, "complete -c nb2beamer", ""},
		{"powershell", []string{"powershell"}, ExitSuccess, "Register-ArgumentCompleter", ""},
		{"unsupported", []string{"tcsh"}, ExitUsage, "", "unsupported shell"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(append([]string{"nb2beamer", "completion"}, tt.args...), env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout should contain %q, got %q", tt.wantStdout, stdout.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestGetCommands_Names(t *testing.T) {
	t.Parallel()

	want := []string{"generate", "themes", "doctor", "version", "help", "completion"}
	if diff := cmp.Diff(want, commandNames(getCommands())); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, findCommand(t, "help").Args); diff != "" {
		t.Errorf("help topics mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCommands_GenerateFlags(t *testing.T) {
	t.Parallel()

	gen := findCommand(t, "generate")
	if gen.FilePattern != "*.ipynb" {
		t.Errorf("FilePattern = %q, want *.ipynb", gen.FilePattern)
	}
	if diff := cmp.Diff([]string{"cu", "fiu", "mit", "stanford"}, gen.Args); diff != "" {
		t.Errorf("positional theme keys mismatch (-want +got):\n%s", diff)
	}

	flags := make(map[string]flagDef)
	for _, f := range gen.Flags {
		flags[f.Long] = f
	}

	tests := []struct {
		name      string
		wantShort string
		wantType  flagType
	}{
		{"output", "o", flagDir},
		{"theme", "t", flagEnum},
		{"config", "c", flagFile},
		{"quiet", "q", flagBool},
		{"verbose", "v", flagBool},
		{"author", "", flagString},
		{"asset-path", "", flagDir},
		{"logo-dir", "", flagDir},
		{"code-max-lines", "", flagInt},
	}

	for _, tt := range tests {
		f, ok := flags[tt.name]
		if !ok {
			t.Errorf("missing flag --%s", tt.name)
			continue
		}
		if f.Short != tt.wantShort {
			t.Errorf("--%s: short = %q, want %q", tt.name, f.Short, tt.wantShort)
		}
		if f.Type != tt.wantType {
			t.Errorf("--%s: type = %v, want %v", tt.name, f.Type, tt.wantType)
		}
	}

	if got := flags["config"].FileGlob; got != "*.yaml,*.yml" {
		t.Errorf("--config glob = %q, want *.yaml,*.yml", got)
	}
	if diff := cmp.Diff(builtinThemeKeys(), flags["theme"].Values); diff != "" {
		t.Errorf("--theme values mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCommands_FlagsMatchCommandFlagSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		want    []string
	}{
		{"themes", []string{"config", "yaml"}},
		{"doctor", []string{"json"}},
		{"version", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, f := range findCommand(t, tt.command).Flags {
				got = append(got, f.Long)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuoteHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quote func(string) string
		input string
		want  string
	}{
		{"zsh brackets and colon", zshQuote, "a [b]: c's", `a \[b\]\: c'\''s`},
		{"fish quote", fishQuote, `it's a\b`, `it\'s a\\b`},
		{"powershell quote", psQuote, "it's", "it''s"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.quote(tt.input); got != tt.want {
				t.Errorf("quote(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrintCompletionUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printCompletionUsage(&buf)

	for _, want := range []string{"Usage: nb2beamer completion", "bash", "zsh", "fish", "powershell", "Installation"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("completion usage missing %q", want)
		}
	}
}
