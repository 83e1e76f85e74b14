package api

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/amterp/filecolor/internal/model"
)

const faviconFallback = "#3b82f6"

// GenerateFaviconSVG draws up to four palette colors as quadrants of a rounded
// square. An empty palette gives a plain square with the letter F.
func GenerateFaviconSVG(palette []model.PaletteColor) string {
	var colors []string
	for _, c := range palette {
		if model.IsHexColor(c.Value) {
			colors = append(colors, c.Value)
		}
		if len(colors) == 4 {
			break
		}
	}

	if len(colors) == 0 {
		return fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" rx="6" fill="%s"/>`+
				`<text x="50%%" y="50%%" dominant-baseline="central" text-anchor="middle" fill="white" font-family="system-ui, -apple-system, sans-serif" font-weight="600" font-size="20">F</text></svg>`,
			faviconFallback,
		)
	}

	// Quadrant layout per color count: full, halves, then 2x2 with the last
	// cell repeating when there are three.
	type cell struct{ x, y, w, h int }
	layouts := map[int][]cell{
		1: {{0, 0, 32, 32}},
		2: {{0, 0, 16, 32}, {16, 0, 16, 32}},
		3: {{0, 0, 16, 16}, {16, 0, 16, 16}, {0, 16, 32, 16}},
		4: {{0, 0, 16, 16}, {16, 0, 16, 16}, {0, 16, 16, 16}, {16, 16, 16, 16}},
	}

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32">`)
	b.WriteString(`<clipPath id="r"><rect width="32" height="32" rx="6"/></clipPath><g clip-path="url(#r)">`)
	for i, c := range layouts[len(colors)] {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			c.x, c.y, c.w, c.h, html.EscapeString(colors[i]))
	}
	b.WriteString(`</g></svg>`)
	return b.String()
}

// GetFavicon serves a favicon drawn from the persisted palette.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	svg := GenerateFaviconSVG(h.vault.Host.Settings().Palette)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(svg))
}
