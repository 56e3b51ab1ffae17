package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2beamer <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a Beamer presentation from a notebook")
	fmt.Fprintln(w, "  themes     List available themes")
	fmt.Fprintln(w, "  doctor     Check what compiling the presentation needs")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Shorthand: nb2beamer <notebook.ipynb> [theme] runs generate.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'nb2beamer help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2beamer generate <notebook> [theme] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate presentation.tex, compile scripts and assets from a Jupyter notebook.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  notebook   Path to the .ipynb file")
	fmt.Fprintln(w, "  theme      Theme key, same as --theme")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default \"output\", replaced if present)")
	fmt.Fprintln(w, "  -t, --theme <key>         Theme key (default \"cu\"; see 'nb2beamer themes')")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Title Block:")
	fmt.Fprintln(w, "      --title <s>           Title (\"\" = from the notebook's title cell)")
	fmt.Fprintln(w, "      --subtitle <s>        Subtitle")
	fmt.Fprintln(w, "      --author <s>          Author")
	fmt.Fprintln(w, "      --institute <s>       Institute (\"\" = theme institution)")
	fmt.Fprintln(w, "      --date <s>            Date: \"today\", \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, month")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Week of] MMM D")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --template <name>     Template set name (default \"default\")")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (templates/, logos/)")
	fmt.Fprintln(w, "      --logo-dir <dir>      Directory searched for theme logos first")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code Listings:")
	fmt.Fprintln(w, "      --code-break-lines <n> Lines above which frames break (default 50)")
	fmt.Fprintln(w, "      --code-max-lines <n>   Lines above which a note replaces the listing (default 200)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NB2BEAMER_CONFIG, NB2BEAMER_THEME, NB2BEAMER_OUTPUT_DIR, NB2BEAMER_ASSET_PATH,")
	fmt.Fprintln(w, "  NB2BEAMER_LOGO_DIR, NB2BEAMER_AUTHOR, NB2BEAMER_INSTITUTE, NB2BEAMER_DATE")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printThemesUsage prints usage for the themes command.
func printThemesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2beamer themes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List built-in and config-defined themes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --yaml                Print a themes: section for a config file")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2beamer doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check for a LaTeX engine, the template's packages and inkscape.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "themes":
		printThemesUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: nb2beamer version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: nb2beamer help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
