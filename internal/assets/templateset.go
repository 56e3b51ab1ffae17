package assets

// File names making up a template set. They are also the names written to
// the output tree.
const (
	DocumentFile      = "presentation.tex"
	UnixScriptFile    = "compile_presentation.sh"
	WindowsScriptFile = "compile_presentation.bat"
)

// TemplateSet holds the presentation template and its compile scripts.
type TemplateSet struct {
	Name          string // Identifier (name or directory path)
	Document      string // Beamer document with {{TOKEN}} placeholders
	UnixScript    string // Copied verbatim, made executable
	WindowsScript string // Copied verbatim
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// templateSetFiles lists the files read for a set, in the order of the
// TemplateSet fields they fill.
var templateSetFiles = []string{DocumentFile, UnixScriptFile, WindowsScriptFile}

func newTemplateSet(name string, contents [][]byte) *TemplateSet {
	return &TemplateSet{
		Name:          name,
		Document:      string(contents[0]),
		UnixScript:    string(contents[1]),
		WindowsScript: string(contents[2]),
	}
}
