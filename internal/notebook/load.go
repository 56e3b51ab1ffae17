package notebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// MaxDocumentSize bounds the notebook size read into memory (256MB).
var MaxDocumentSize int64 = 256 << 20

// imageMimeTypes lists the representations preferred over text, in order.
var imageMimeTypes = []string{
	"image/png",
	"image/jpeg",
	"application/pdf",
	"image/svg+xml",
}

// rawNotebook mirrors the nbformat 4 JSON layout.
type rawNotebook struct {
	Cells    *[]json.RawMessage `json:"cells"`
	Metadata struct {
		Kernelspec struct {
			Language string `json:"language"`
		} `json:"kernelspec"`
		LanguageInfo struct {
			Name          string `json:"name"`
			FileExtension string `json:"file_extension"`
		} `json:"language_info"`
	} `json:"metadata"`
}

type rawCell struct {
	CellType string          `json:"cell_type"`
	Source   multilineString `json:"source"`
	Outputs  []rawOutput     `json:"outputs"`
}

type rawOutput struct {
	OutputType string                     `json:"output_type"`
	Text       multilineString            `json:"text"`
	Data       map[string]multilineString `json:"data"`
}

// multilineString accepts both nbformat encodings: a string or an array of
// strings to be concatenated.
type multilineString string

func (m *multilineString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = multilineString(s)
		return nil
	}
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return errors.New("expected string or array of strings")
	}
	*m = multilineString(strings.Join(parts, ""))
	return nil
}

// Load reads and parses the notebook at path.
func Load(path string) (*Notebook, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	if info.Size() > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrMalformed, path, MaxDocumentSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided notebook path
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	nb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nb, nil
}

// Parse decodes notebook JSON.
func Parse(data []byte) (*Notebook, error) {
	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Cells == nil {
		return nil, fmt.Errorf("%w: missing cells array", ErrMalformed)
	}

	nb := &Notebook{
		Language:      raw.Metadata.Kernelspec.Language,
		FileExtension: raw.Metadata.LanguageInfo.FileExtension,
		Cells:         make([]Cell, 0, len(*raw.Cells)),
	}
	if nb.Language == "" {
		nb.Language = raw.Metadata.LanguageInfo.Name
	}

	for i, msg := range *raw.Cells {
		var rc rawCell
		if err := json.Unmarshal(msg, &rc); err != nil {
			return nil, &CellError{Index: i, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
		}
		kind, ok := parseKind(rc.CellType)
		if !ok {
			return nil, &CellError{Index: i, Err: fmt.Errorf("%w: unknown cell_type %q", ErrMalformed, rc.CellType)}
		}
		cell := Cell{
			Index:  i,
			Kind:   kind,
			Source: normalizeLineEndings(string(rc.Source)),
		}
		if kind == KindCode {
			cell.Outputs = convertOutputs(rc.Outputs)
		}
		nb.Cells = append(nb.Cells, cell)
	}

	return nb, nil
}

// convertOutputs reduces each output to its preferred representation.
// Outputs with nothing usable are dropped.
func convertOutputs(raws []rawOutput) []Output {
	var outs []Output
	for _, ro := range raws {
		switch ro.OutputType {
		case "stream":
			outs = append(outs, Output{MimeType: "text/plain", Data: string(ro.Text)})
		case "display_data", "execute_result":
			if out, ok := preferred(ro.Data); ok {
				outs = append(outs, out)
			}
		}
	}
	return outs
}

func preferred(bundle map[string]multilineString) (Output, bool) {
	for _, mt := range imageMimeTypes {
		if d, ok := bundle[mt]; ok {
			return Output{MimeType: mt, Data: string(d)}, true
		}
	}
	if d, ok := bundle["text/plain"]; ok {
		return Output{MimeType: "text/plain", Data: string(d)}, true
	}
	return Output{}, false
}

func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}
