package resolver

import (
	"strings"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
)

// ResolveColor finds a palette color by ID or name.
// Tries exact ID match first, then falls back to a case-insensitive name match,
// which must be unique.
func ResolveColor(palette []model.PaletteColor, idOrName string) (*model.PaletteColor, error) {
	ref := strings.TrimSpace(idOrName)
	if ref == "" {
		return nil, fcerr.InvalidField("color", "must not be empty")
	}

	for i := range palette {
		if palette[i].ID == ref {
			return &palette[i], nil
		}
	}

	var matches []int
	for i := range palette {
		if palette[i].Name != "" && strings.EqualFold(palette[i].Name, ref) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fcerr.ColorNotFound(ref)
	case 1:
		return &palette[matches[0]], nil
	default:
		ids := make([]string, len(matches))
		for j, i := range matches {
			ids[j] = palette[i].ID
		}
		return nil, fcerr.AmbiguousColor(ref, ids)
	}
}
