package graph

import (
	"html"
	"strings"

	"github.com/izebair/Rezepte/internal/model"
)

// RenderPage renders a recipe as the XHTML document the OneNote pages API
// expects. All recipe text is escaped; image URLs end up in src attributes.
func RenderPage(r model.Recipe) string {
	title := r.EffectiveTitle()
	if title == "" {
		title = "(ohne Titel)"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("</head>\n<body>\n")

	if meta := metaLine(r); meta != "" {
		b.WriteString("<p><i>" + meta + "</i></p>\n")
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("<h2>Zutaten</h2>\n<ul>\n")
		for _, item := range r.Ingredients {
			b.WriteString("<li>" + html.EscapeString(item) + "</li>\n")
		}
		b.WriteString("</ul>\n")
	}

	if len(r.Steps) > 0 {
		b.WriteString("<h2>Zubereitung</h2>\n<ol>\n")
		for _, step := range r.Steps {
			b.WriteString("<li>" + html.EscapeString(step) + "</li>\n")
		}
		b.WriteString("</ol>\n")
	}

	if len(r.Images) > 0 {
		b.WriteString("<h2>Bilder</h2>\n")
		for _, src := range r.Images {
			b.WriteString(`<img src="` + html.EscapeString(src) + `" alt="" />` + "\n")
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// metaLine joins the scalar recipe fields into one escaped line, for
// example "Portionen: 4 • Zeit: 30 min".
func metaLine(r model.Recipe) string {
	var parts []string
	if r.Servings != "" {
		parts = append(parts, "Portionen: "+html.EscapeString(r.Servings))
	}
	if r.Time != "" {
		parts = append(parts, "Zeit: "+html.EscapeString(r.Time))
	}
	if r.Difficulty != "" {
		parts = append(parts, "Schwierigkeit: "+html.EscapeString(r.Difficulty))
	}
	return strings.Join(parts, " • ")
}
