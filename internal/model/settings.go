package model

// PluginSettings is the persisted settings object of the File Color plugin.
// Stored as data.json in the plugin directory; the JSON keys must match what
// the plugin itself writes.
type PluginSettings struct {
	CascadeColors         bool                  `json:"cascadeColors" toml:"cascadeColors"`
	ColorBackgroundFile   bool                  `json:"colorBackgroundFile" toml:"colorBackgroundFile"`
	ColorBackgroundFolder bool                  `json:"colorBackgroundFolder" toml:"colorBackgroundFolder"`
	Palette               []PaletteColor        `json:"palette" toml:"palette"`
	FileColors            []FileColorAssignment `json:"fileColors" toml:"fileColors"`
}

// PaletteColor is a named color available for assignment.
// ID is immutable once created; Name and Value are freely mutable.
type PaletteColor struct {
	ID    string `json:"id" toml:"id"`
	Name  string `json:"name" toml:"name"`
	Value string `json:"value" toml:"value"`
}

// FileColorAssignment binds a vault path to a palette color ID.
type FileColorAssignment struct {
	Path  string `json:"path" toml:"path"`
	Color string `json:"color" toml:"color"`
}

// DefaultSettings returns the settings the plugin starts with.
func DefaultSettings() *PluginSettings {
	return &PluginSettings{
		Palette:    []PaletteColor{},
		FileColors: []FileColorAssignment{},
	}
}

// Normalize replaces nil slices with empty ones so they encode as [].
func (s *PluginSettings) Normalize() {
	if s.Palette == nil {
		s.Palette = []PaletteColor{}
	}
	if s.FileColors == nil {
		s.FileColors = []FileColorAssignment{}
	}
}

// Clone returns a deep copy of the settings.
func (s *PluginSettings) Clone() *PluginSettings {
	out := *s
	out.Palette = ClonePalette(s.Palette)
	out.FileColors = make([]FileColorAssignment, len(s.FileColors))
	copy(out.FileColors, s.FileColors)
	return &out
}

// GetColor returns the palette color with the given ID, or nil if none.
func (s *PluginSettings) GetColor(id string) *PaletteColor {
	for i := range s.Palette {
		if s.Palette[i].ID == id {
			return &s.Palette[i]
		}
	}
	return nil
}

// GetAssignment returns the assignment for the given path, or nil if none.
func (s *PluginSettings) GetAssignment(path string) *FileColorAssignment {
	for i := range s.FileColors {
		if s.FileColors[i].Path == path {
			return &s.FileColors[i]
		}
	}
	return nil
}

// SetAssignment assigns a color to a path, replacing any existing assignment.
func (s *PluginSettings) SetAssignment(path, colorID string) {
	if a := s.GetAssignment(path); a != nil {
		a.Color = colorID
		return
	}
	s.FileColors = append(s.FileColors, FileColorAssignment{Path: path, Color: colorID})
}

// RemoveAssignment removes the assignment for a path.
// Returns false if the path had no assignment.
func (s *PluginSettings) RemoveAssignment(path string) bool {
	for i, a := range s.FileColors {
		if a.Path == path {
			s.FileColors = append(s.FileColors[:i], s.FileColors[i+1:]...)
			return true
		}
	}
	return false
}

// AssignmentsForColor returns the paths assigned to the given color ID.
func (s *PluginSettings) AssignmentsForColor(colorID string) []string {
	var paths []string
	for _, a := range s.FileColors {
		if a.Color == colorID {
			paths = append(paths, a.Path)
		}
	}
	return paths
}
