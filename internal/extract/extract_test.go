package extract

import (
	"errors"
	"testing"

	"github.com/alnah/go-nb2beamer/internal/notebook"
)

func codeCell(index int, src string, outputs ...notebook.Output) notebook.Cell {
	return notebook.Cell{Index: index, Kind: notebook.KindCode, Source: src, Outputs: outputs}
}

func png(data string) notebook.Output {
	return notebook.Output{MimeType: "image/png", Data: data}
}

func TestExtractor_Code(t *testing.T) {
	t.Parallel()

	e := New(&notebook.Notebook{FileExtension: ".py"})

	a, ok := e.Code(codeCell(3, "import numpy as np\nx = 1\n"))
	if !ok {
		t.Fatal("Code() returned false for a code cell")
	}
	if a.FileName != "cell_001.py" {
		t.Errorf("FileName = %q, want cell_001.py", a.FileName)
	}
	if a.Path() != "assets/code/cell_001.py" {
		t.Errorf("Path() = %q", a.Path())
	}
	if string(a.Data) != "import numpy as np\nx = 1\n" {
		t.Errorf("Data = %q, want verbatim source", a.Data)
	}
	if a.Lines != 2 {
		t.Errorf("Lines = %d, want 2", a.Lines)
	}
	if a.CellIndex != 3 {
		t.Errorf("CellIndex = %d, want 3", a.CellIndex)
	}
}

func TestExtractor_CodeKeepsSourceUnescaped(t *testing.T) {
	t.Parallel()

	e := New(&notebook.Notebook{FileExtension: ".py"})
	src := "d = {'a_b': 100} # 50% & $x\n"

	a, _ := e.Code(codeCell(0, src))
	if string(a.Data) != src {
		t.Errorf("Data = %q, want %q", a.Data, src)
	}
}

func TestExtractor_CodeSkipsBlankAndNonCode(t *testing.T) {
	t.Parallel()

	e := New(&notebook.Notebook{})

	if _, ok := e.Code(codeCell(0, "  \n\t")); ok {
		t.Error("Code() extracted a blank cell")
	}
	if _, ok := e.Code(notebook.Cell{Kind: notebook.KindMarkdown, Source: "# x"}); ok {
		t.Error("Code() extracted a markdown cell")
	}

	a, ok := e.Code(codeCell(2, "x"))
	if !ok || a.Seq != 1 {
		t.Errorf("first real code cell got Seq %d, want 1", a.Seq)
	}
}

func TestExtractor_Images(t *testing.T) {
	t.Parallel()

	e := New(&notebook.Notebook{})
	cell := codeCell(1, "plot()",
		notebook.Output{MimeType: "text/plain", Data: "<Figure>"},
		png("aGVs\nbG8="),
		notebook.Output{MimeType: "image/svg+xml", Data: "<svg/>"},
		notebook.Output{MimeType: "application/vnd.plotly+json", Data: "{}"},
	)

	got, err := e.Images(cell)
	if err != nil {
		t.Fatalf("Images() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Images()) = %d, want 2", len(got))
	}
	if got[0].FileName != "cell_001.png" || string(got[0].Data) != "hello" {
		t.Errorf("first image = %s %q", got[0].FileName, got[0].Data)
	}
	if got[1].FileName != "cell_002.svg" || string(got[1].Data) != "<svg/>" {
		t.Errorf("second image = %s %q", got[1].FileName, got[1].Data)
	}
	if got[1].Path() != "assets/figures/cell_002.svg" {
		t.Errorf("Path() = %q", got[1].Path())
	}
}

func TestExtractor_ImagesInvalidBase64(t *testing.T) {
	t.Parallel()

	e := New(&notebook.Notebook{})
	_, err := e.Images(codeCell(7, "", png("!!!not-base64")))

	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Images() error = %v, want ErrDecode", err)
	}
	var cellErr *notebook.CellError
	if !errors.As(err, &cellErr) || cellErr.Index != 7 {
		t.Errorf("error %v should carry cell index 7", err)
	}
}

func TestExtractor_SequencesIndependentPerKind(t *testing.T) {
	t.Parallel()

	e := New(&notebook.Notebook{FileExtension: ".py"})
	cells := []notebook.Cell{
		codeCell(0, "a", png("AA=="), png("AA==")),
		codeCell(1, "b"),
		codeCell(2, "c", png("AA==")),
	}

	for _, c := range cells {
		e.Code(c)
		if _, err := e.Images(c); err != nil {
			t.Fatal(err)
		}
	}

	var codeSeqs, imageSeqs []int
	for _, a := range e.Assets() {
		switch a.Kind {
		case KindCode:
			codeSeqs = append(codeSeqs, a.Seq)
		case KindImage:
			imageSeqs = append(imageSeqs, a.Seq)
		}
	}

	assertSequence(t, "code", codeSeqs, 3)
	assertSequence(t, "image", imageSeqs, 3)
}

func TestExtractor_Deterministic(t *testing.T) {
	t.Parallel()

	nb := &notebook.Notebook{Language: "python", Cells: []notebook.Cell{
		codeCell(0, "a", png("AA==")),
		{Index: 1, Kind: notebook.KindMarkdown, Source: "text"},
		codeCell(2, "b", png("AA==")),
	}}

	names := func() []string {
		e := New(nb)
		for _, c := range nb.Cells {
			e.Code(c)
			_, _ = e.Images(c)
		}
		var out []string
		for _, a := range e.Assets() {
			out = append(out, a.Path())
		}
		return out
	}

	first, second := names(), names()
	if len(first) != len(second) {
		t.Fatalf("runs differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("asset %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func assertSequence(t *testing.T, kind string, got []int, n int) {
	t.Helper()
	if len(got) != n {
		t.Fatalf("%s sequence = %v, want %d entries", kind, got, n)
	}
	for i, s := range got {
		if s != i+1 {
			t.Errorf("%s sequence = %v, want 1..%d", kind, got, n)
			return
		}
	}
}
