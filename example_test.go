package nb2beamer_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-nb2beamer"
)

// Example generates a presentation tree from a one-cell notebook.
func Example() {
	dir, err := os.MkdirTemp("", "nb2beamer-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	nb := filepath.Join(dir, "talk.ipynb")
	content := `{"cells": [{"cell_type": "markdown", "metadata": {}, "source": "# Hello\n\n### First\n\nWorld"}],
	 "metadata": {}, "nbformat": 4, "nbformat_minor": 5}`
	if err := os.WriteFile(nb, []byte(content), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	gen, err := nb2beamer.NewGenerator()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := gen.Generate(context.Background(), nb2beamer.Input{
		Notebook:  nb,
		Theme:     "mit",
		OutputDir: filepath.Join(dir, "output"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title, result.Frames, result.Logo)
	// Output: Hello 1 assets/logos/mit_logo.svg
}

// ExamplePlaceholders lists the tokens a custom template document may use.
func ExamplePlaceholders() {
	for _, token := range nb2beamer.Placeholders()[:4] {
		fmt.Println(token)
	}
	// Output:
	// UNIVERSITY_NAME
	// PRIMARY_R
	// PRIMARY_G
	// PRIMARY_B
}
