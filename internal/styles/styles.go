// Package styles renders the CSS snippet that carries palette colors into the vault.
package styles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/util"
)

// Header is the first line of every generated stylesheet.
const Header = "/* Generated by filecolor. Edits will be overwritten. */"

var identRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Palette renders one class per palette color exposing --file-color-color,
// plus a body-level alias variable for each named color.
func Palette(palette []model.PaletteColor) string {
	var b strings.Builder

	for _, c := range palette {
		if !identRegex.MatchString(c.ID) || !safeValue(c.Value) {
			continue
		}
		fmt.Fprintf(&b, ".file-color-color-%s { --file-color-color: %s; }\n", c.ID, c.Value)
	}

	var aliases []string
	seen := make(map[string]bool)
	for _, c := range palette {
		slug := util.Slugify(c.Name)
		if slug == "" || seen[slug] || !safeValue(c.Value) {
			continue
		}
		seen[slug] = true
		aliases = append(aliases, fmt.Sprintf("  --file-color-%s: %s;", slug, c.Value))
	}
	if len(aliases) > 0 {
		b.WriteString("body {\n")
		b.WriteString(strings.Join(aliases, "\n"))
		b.WriteString("\n}\n")
	}

	return b.String()
}

// Stylesheet renders the complete snippet from pre-rendered palette CSS and the
// current assignments and options.
func Stylesheet(paletteCSS string, settings *model.PluginSettings) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")

	if paletteCSS != "" {
		b.WriteString(paletteCSS)
		b.WriteString("\n")
	}

	fileProp := property(settings.ColorBackgroundFile)
	folderProp := property(settings.ColorBackgroundFolder)

	for _, a := range settings.FileColors {
		c := settings.GetColor(a.Color)
		if c == nil || !safeValue(c.Value) {
			continue
		}
		path := escapeAttr(a.Path)
		fmt.Fprintf(&b, ".nav-file-title[data-path=\"%s\"] { %s: %s; }\n", path, fileProp, c.Value)
		fmt.Fprintf(&b, ".nav-folder-title[data-path=\"%s\"] { %s: %s; }\n", path, folderProp, c.Value)
	}

	return b.String()
}

func property(background bool) string {
	if background {
		return "background-color"
	}
	return "color"
}

// safeValue rejects values that could break out of a declaration.
func safeValue(v string) bool {
	return v != "" && !strings.ContainsAny(v, ";{}<>\\\n\"")
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
