package model

// ClonePalette returns a copy of the palette that shares no backing array.
func ClonePalette(palette []PaletteColor) []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// PaletteChanged reports whether a draft palette differs from the persisted one.
// Order is not significant: entries are matched by ID, then compared on name and value.
func PaletteChanged(draft, persisted []PaletteColor) bool {
	if len(draft) != len(persisted) {
		return true
	}

	byID := make(map[string]PaletteColor, len(persisted))
	for _, c := range persisted {
		byID[c.ID] = c
	}

	for _, c := range draft {
		p, ok := byID[c.ID]
		if !ok || p.Name != c.Name || p.Value != c.Value {
			return true
		}
	}
	return false
}

// PruneFileColors drops assignments whose color is not an ID in the palette.
// The returned slice is never nil.
func PruneFileColors(fileColors []FileColorAssignment, palette []PaletteColor) []FileColorAssignment {
	ids := make(map[string]bool, len(palette))
	for _, c := range palette {
		ids[c.ID] = true
	}

	kept := make([]FileColorAssignment, 0, len(fileColors))
	for _, a := range fileColors {
		if ids[a.Color] {
			kept = append(kept, a)
		}
	}
	return kept
}
