// Package web holds the embedded page templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"portfolio-site/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// icons maps every known social icon to its sprite reference.
// IconNone is deliberately absent so unknown icons render nothing.
var icons = map[domain.Icon]string{
	domain.IconDiscord:   "discord",
	domain.IconTwitter:   "twitter",
	domain.IconTiktok:    "tiktok",
	domain.IconYoutube:   "youtube",
	domain.IconTwitch:    "twitch",
	domain.IconInstagram: "instagram",
}

// IconGlyph returns the inline SVG for icon, or nothing for unknown icons.
func IconGlyph(icon domain.Icon) template.HTML {
	id, ok := icons[icon]
	if !ok {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%s" aria-hidden="true"><use href="/static/icons.svg#%s"></use></svg>`, id, id))
}

// FuncMap is shared by all page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"icon":      IconGlyph,
		"isVideo":   func(url string) bool { return domain.MediaKindOf(url) == domain.MediaVideo },
		"inc":       func(i int) int { return i + 1 },
		"sectionID": sectionID,
	}
}

func sectionID(name string) string {
	switch name {
	case "Past Work":
		return "past-work"
	case "Contact Me":
		return "contact"
	default:
		return "about"
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time, so this cannot happen
		panic(err)
	}
	return sub
}
