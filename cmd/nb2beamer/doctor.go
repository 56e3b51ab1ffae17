package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
	flag "github.com/spf13/pflag"
)

// Replaced in tests.
var (
	lookPath  = exec.LookPath
	kpsewhich = func(file string) (string, error) {
		out, err := exec.Command("kpsewhich", file).Output() // #nosec G204 -- fixed file names
		return strings.TrimSpace(string(out)), err
	}
)

// latexEngines are tried in the order the compile scripts try them.
var latexEngines = []string{"pdflatex", "tectonic"}

// latexPackages are the classes and packages the default template loads.
var latexPackages = []string{"beamer.cls", "listings.sty", "svg.sty", "textpos.sty", "xstring.sty"}

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Engine   engineInfo   `json:"engine"`
	Packages []string     `json:"missing_packages,omitempty"`
	Inkscape bool         `json:"inkscape"`
	System   systemInfo   `json:"system"`
	Env      platformInfo `json:"platform"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// engineInfo holds LaTeX engine detection results.
type engineInfo struct {
	Found bool   `json:"found"`
	Name  string `json:"name,omitempty"`
	Path  string `json:"path,omitempty"`
}

type platformInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// newDoctorFlagSet registers the doctor command flags.
func newDoctorFlagSet(jsonOutput *bool, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(jsonOutput, "json", false, "print the report as JSON")
	fs.Usage = func() { printDoctorUsage(stderr) }
	return fs
}

// runDoctorCmd checks what compiling a generated presentation needs.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	var jsonOutput bool
	fs := newDoctorFlagSet(&jsonOutput, env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	result := runDoctor()

	if jsonOutput {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return ExitGeneral
		}
		fmt.Fprintln(env.Stdout, string(out))
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env:    platformInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkEngine(result)
	checkPackages(result)
	checkInkscape(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

func checkEngine(result *doctorResult) {
	for _, name := range latexEngines {
		if path, err := lookPath(name); err == nil {
			result.Engine = engineInfo{Found: true, Name: name, Path: path}
			return
		}
	}
	result.Errors = append(result.Errors,
		"No LaTeX engine found. Install TeX Live (pdflatex) or tectonic")
}

// checkPackages asks kpsewhich for the template's packages. Tectonic fetches
// packages on demand, so the check only applies to pdflatex.
func checkPackages(result *doctorResult) {
	if result.Engine.Name != "pdflatex" {
		return
	}
	for _, file := range latexPackages {
		if path, err := kpsewhich(file); err != nil || path == "" {
			result.Packages = append(result.Packages, file)
		}
	}
	if len(result.Packages) > 0 {
		result.Errors = append(result.Errors,
			"Missing LaTeX packages: "+strings.Join(result.Packages, ", "))
	}
}

// checkInkscape warns when SVG figures and logos cannot be converted.
func checkInkscape(result *doctorResult) {
	if _, err := lookPath("inkscape"); err == nil {
		result.Inkscape = true
		return
	}
	result.Warnings = append(result.Warnings,
		"inkscape not found; presentations with SVG figures or a placeholder logo will not compile")
}

func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "nb2beamer-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "nb2beamer doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LaTeX")
	if r.Engine.Found {
		fmt.Fprintf(w, "  [OK] %s at %s\n", r.Engine.Name, r.Engine.Path)
	} else {
		fmt.Fprintln(w, "  [ERROR] No engine found")
	}
	if r.Engine.Name == "pdflatex" && len(r.Packages) == 0 {
		fmt.Fprintln(w, "  [OK] Template packages installed")
	}
	if r.Inkscape {
		fmt.Fprintln(w, "  [OK] inkscape found (SVG support)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to compile")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
