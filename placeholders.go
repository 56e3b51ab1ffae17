package nb2beamer

import (
	"strconv"

	"github.com/alnah/go-nb2beamer/internal/binder"
	"github.com/alnah/go-nb2beamer/internal/dateutil"
	"github.com/alnah/go-nb2beamer/internal/latex"
	"github.com/alnah/go-nb2beamer/internal/slides"
)

// Placeholder tokens bound into the presentation template.
const (
	TokenUniversityName = "UNIVERSITY_NAME"
	TokenLogoFile       = "LOGO_FILE"
	TokenTitle          = "TITLE"
	TokenSubtitle       = "SUBTITLE"
	TokenAuthor         = "AUTHOR"
	TokenInstitute      = "INSTITUTE"
	TokenDate           = "DATE"
	TokenContent        = "CONTENT"
)

// colorTokens lists each theme color with its token prefix.
var colorTokens = []struct {
	prefix string
	color  func(Theme) RGB
}{
	{"PRIMARY", func(t Theme) RGB { return t.Primary }},
	{"SECONDARY", func(t Theme) RGB { return t.Secondary }},
	{"TERTIARY", func(t Theme) RGB { return t.Tertiary }},
	{"QUATERNARY", func(t Theme) RGB { return t.Quaternary }},
}

// Placeholders returns every token the generator binds, in template order.
func Placeholders() []string {
	tokens := []string{TokenUniversityName}
	for _, c := range colorTokens {
		tokens = append(tokens, c.prefix+"_R", c.prefix+"_G", c.prefix+"_B")
	}
	return append(tokens, TokenLogoFile, TokenTitle, TokenSubtitle, TokenAuthor, TokenInstitute, TokenDate, TokenContent)
}

// placeholderMap builds the values for one run. md holds LaTeX text;
// the theme name and the date are escaped here.
func placeholderMap(t Theme, md slides.Metadata, logoFile, date, content string) binder.Map {
	m := binder.Map{
		TokenUniversityName: latex.Escape(t.Name),
		TokenLogoFile:       logoFile,
		TokenTitle:          md.Title,
		TokenSubtitle:       "",
		TokenAuthor:         md.Author,
		TokenInstitute:      md.Institute,
		TokenDate:           date,
		TokenContent:        content,
	}
	for _, c := range colorTokens {
		rgb := c.color(t)
		m[c.prefix+"_R"] = strconv.Itoa(int(rgb.R))
		m[c.prefix+"_G"] = strconv.Itoa(int(rgb.G))
		m[c.prefix+"_B"] = strconv.Itoa(int(rgb.B))
	}
	// \subtitle{} with an empty argument still reserves a line on the title page.
	if md.Subtitle != "" {
		m[TokenSubtitle] = `\subtitle{` + md.Subtitle + `}`
	}
	if date != dateutil.Today {
		m[TokenDate] = latex.Escape(date)
	}
	return m
}
