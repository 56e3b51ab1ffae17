package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-nb2beamer/internal/theme"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

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
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma-separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string   // glob for the first positional argument, empty if none
	Args        []string // values for the next positional argument
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types and descriptions come from the FlagSets.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string
	IsDir    bool
}

var flagCompletionMeta = map[string]completionMeta{
	"theme": {Values: builtinThemeKeys},

	"config": {FileGlob: "*.yaml,*.yml"},

	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
	"logo-dir":   {IsDir: true},
}

func builtinThemeKeys() []string {
	return theme.Builtin().Keys()
}

var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int64", "uint", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags come from the same FlagSets the commands parse with.
func getCommands() []commandDef {
	var doctorJSON bool
	helpTopics := []string{"generate", "themes", "doctor", "version", "help", "completion"}

	return []commandDef{
		{
			Name:        "generate",
			Desc:        "Generate a Beamer presentation from a notebook",
			Flags:       extractFlagsFromFlagSet(newGenerateFlagSet(&generateFlags{}, io.Discard)),
			FilePattern: "*.ipynb",
			Args:        builtinThemeKeys(),
		},
		{
			Name:  "themes",
			Desc:  "List available themes",
			Flags: extractFlagsFromFlagSet(newThemesFlagSet(&themesFlags{}, io.Discard)),
		},
		{
			Name:  "doctor",
			Desc:  "Check what compiling the presentation needs",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorJSON, io.Discard)),
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: helpTopics},
		{Name: "completion", Desc: "Generate shell completion script", Args: supportedShells},
	}
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletionCmd handles the completion command.
func runCompletionCmd(args []string, env *Environment) int {
	if err := runCompletion(args, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	return ExitSuccess
}

func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2beamer completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w, "Theme keys complete from the built-in registry.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(nb2beamer completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(nb2beamer completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    nb2beamer completion fish > ~/.config/fish/completions/nb2beamer.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    nb2beamer completion powershell | Out-String | Invoke-Expression")
}

// casePattern matches a command name in shell case statements. A notebook
// path in command position runs generate.
func casePattern(name string) string {
	if name == "generate" {
		return "generate|*.ipynb"
	}
	return name
}

// flagSpellings returns the flag as --long and, if set, -s.
func flagSpellings(f flagDef) []string {
	names := []string{"--" + f.Long}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for nb2beamer\n")
	b.WriteString("# Generated by: nb2beamer completion bash\n\n")
	b.WriteString("_nb2beamer_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W '%s' -- \"${cur}\") )\n", strings.Join(commandNames(cmds), " "))
	bashFiles(&b, "        ", "*.ipynb")
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", casePattern(c.Name))
		if len(c.Flags) > 0 {
			b.WriteString("            case \"${prev}\" in\n")
			for _, f := range c.Flags {
				if f.Type == flagBool {
					continue
				}
				fmt.Fprintf(&b, "                %s)\n", strings.Join(flagSpellings(f), "|"))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "                    COMPREPLY=( $(compgen -W '%s' -- \"${cur}\") )\n", strings.Join(f.Values, " "))
				case flagFile:
					bashFiles(&b, "                    ", f.FileGlob)
				case flagDir:
					b.WriteString("                    COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
				}
				b.WriteString("                    return 0\n")
				b.WriteString("                    ;;\n")
			}
			b.WriteString("            esac\n")

			var all []string
			for _, f := range c.Flags {
				all = append(all, flagSpellings(f)...)
			}
			b.WriteString("            if [[ ${cur} == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W '%s' -- \"${cur}\") )\n", strings.Join(all, " "))
			b.WriteString("                return 0\n")
			b.WriteString("            fi\n")
		}
		if c.FilePattern != "" {
			bashFiles(&b, "            ", c.FilePattern)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "            COMPREPLY+=( $(compgen -W '%s' -- \"${cur}\") )\n", strings.Join(c.Args, " "))
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _nb2beamer_completions nb2beamer\n")
	return b.String()
}

// bashFiles appends files matching pattern plus directories to descend into.
func bashFiles(b *strings.Builder, indent, pattern string) {
	for _, g := range globs(pattern) {
		fmt.Fprintf(b, "%sCOMPREPLY+=( $(compgen -f -X '!%s' -- \"${cur}\") )\n", indent, g)
	}
	fmt.Fprintf(b, "%sCOMPREPLY+=( $(compgen -d -- \"${cur}\") )\n", indent)
}

// zshQuote escapes s for a single-quoted _arguments description.
func zshQuote(s string) string {
	return strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`).Replace(s)
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef nb2beamer\n")
	b.WriteString("# zsh completion for nb2beamer\n")
	b.WriteString("# Generated by: nb2beamer completion zsh\n\n")
	b.WriteString("_nb2beamer() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    _arguments -C \\\n")
	b.WriteString("        '1: :->command' \\\n")
	b.WriteString("        '*:: :->args'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("        command)\n")
	b.WriteString("            _describe -t commands 'nb2beamer command' commands\n")
	b.WriteString("            _files -g '*.ipynb'\n")
	b.WriteString("            ;;\n")
	b.WriteString("        args)\n")
	b.WriteString("            case $words[1] in\n")
	for _, c := range cmds {
		var specs []string
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		pos := 1
		if c.FilePattern != "" {
			specs = append(specs, fmt.Sprintf(`'%d:file:_files -g "%s"'`, pos, strings.Join(globs(c.FilePattern), " ")))
			pos++
		}
		if len(c.Args) > 0 {
			specs = append(specs, fmt.Sprintf("'%d:value:(%s)'", pos, strings.Join(c.Args, " ")))
		}

		fmt.Fprintf(&b, "                %s)\n", casePattern(c.Name))
		if len(specs) > 0 {
			b.WriteString("                    _arguments \\\n")
			for i, spec := range specs {
				b.WriteString("                        " + spec)
				if i < len(specs)-1 {
					b.WriteString(" \\")
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("                    ;;\n")
	}
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _nb2beamer nb2beamer\n")
	return b.String()
}

func zshFlagSpec(f flagDef) string {
	var name string
	if f.Short != "" {
		name = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	} else {
		name = "'--" + f.Long
	}
	spec := name + "[" + zshQuote(f.Desc) + "]"
	switch f.Type {
	case flagBool:
	case flagEnum:
		spec += ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		spec += `:file:_files -g "` + strings.Join(globs(f.FileGlob), " ") + `"`
	case flagDir:
		spec += ":directory:_files -/"
	default:
		spec += ":" + f.Long + ": "
	}
	return spec + "'"
}

// fishQuote escapes s for a single-quoted fish string.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for nb2beamer\n")
	b.WriteString("# Generated by: nb2beamer completion fish\n\n")
	b.WriteString("function __fish_nb2beamer_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_nb2beamer_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; or return 1\n")
	b.WriteString("    set -l sub $cmd[2]\n")
	b.WriteString("    string match -q -- '*.ipynb' $sub; and set sub generate\n")
	b.WriteString("    contains -- $sub $argv\n")
	b.WriteString("end\n\n")

	b.WriteString("complete -c nb2beamer -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c nb2beamer -n __fish_nb2beamer_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}
	b.WriteString("complete -c nb2beamer -n __fish_nb2beamer_needs_command -k -a '(__fish_complete_suffix .ipynb)'\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_nb2beamer_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			line := "complete -c nb2beamer -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				var suffixes []string
				for _, g := range globs(f.FileGlob) {
					suffixes = append(suffixes, "(__fish_complete_suffix "+strings.TrimPrefix(g, "*")+")")
				}
				line += " -r -k -a '" + strings.Join(suffixes, " ") + "'"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			line += " -d '" + fishQuote(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		if c.FilePattern != "" {
			for _, g := range globs(c.FilePattern) {
				fmt.Fprintf(&b, "complete -c nb2beamer -n %s -k -a '(__fish_complete_suffix %s)'\n", cond, strings.TrimPrefix(g, "*"))
			}
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c nb2beamer -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}
	return b.String()
}

// psQuote escapes s for a single-quoted PowerShell string.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func psList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + psQuote(v) + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# powershell completion for nb2beamer\n")
	b.WriteString("# Generated by: nb2beamer completion powershell\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName nb2beamer -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psQuote(c.Desc))
	}
	b.WriteString("    }\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		var all []string
		for _, f := range c.Flags {
			all = append(all, flagSpellings(f)...)
		}
		if len(all) > 0 {
			fmt.Fprintf(&b, "        '%s' = %s\n", c.Name, psList(all))
		}
	}
	b.WriteString("    }\n")

	b.WriteString("    $values = @{\n")
	seen := make(map[string]bool)
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum {
				continue
			}
			for _, name := range flagSpellings(f) {
				if !seen[name] {
					seen[name] = true
					fmt.Fprintf(&b, "        '%s' = %s\n", name, psList(f.Values))
				}
			}
		}
	}
	b.WriteString("    }\n")

	b.WriteString("    $positional = @{\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = %s\n", c.Name, psList(c.Args))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString(`    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    $count = $elements.Count
    if ($wordToComplete -ne '') { $count-- }

    if ($count -le 1) {
        $commands.GetEnumerator() | Where-Object { $_.Key -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)
        }
        return
    }

    $cmd = $elements[1]
    if ($cmd -like '*.ipynb') { $cmd = 'generate' }
    $prev = $elements[$count - 1]

    if ($values.ContainsKey($prev)) {
        $values[$prev] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    if ($wordToComplete -like '-*') {
        if ($flags.ContainsKey($cmd)) {
            $flags[$cmd] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)
            }
        }
        return
    }

    if ($positional.ContainsKey($cmd)) {
        $positional[$cmd] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
}
`)
	return b.String()
}
