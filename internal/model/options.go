package model

import "strings"

// OptionKey names one of the boolean plugin options.
type OptionKey string

const (
	OptionCascadeColors         OptionKey = "cascadeColors"
	OptionColorBackgroundFile   OptionKey = "colorBackgroundFile"
	OptionColorBackgroundFolder OptionKey = "colorBackgroundFolder"
)

// OptionKeys lists the options in display order.
var OptionKeys = []OptionKey{
	OptionCascadeColors,
	OptionColorBackgroundFile,
	OptionColorBackgroundFolder,
}

// OptionInfo describes an option for display.
type OptionInfo struct {
	Key         OptionKey
	Alias       string // kebab-case form accepted on the command line
	Name        string
	Description string
}

var optionInfo = map[OptionKey]OptionInfo{
	OptionCascadeColors: {
		Key:         OptionCascadeColors,
		Alias:       "cascade-colors",
		Name:        "Cascade Colors",
		Description: "Folders will cascade their colors to sub-folders and notes, unless their colors are explicitly set.",
	},
	OptionColorBackgroundFile: {
		Key:         OptionColorBackgroundFile,
		Alias:       "color-background-file",
		Name:        "Color File Background",
		Description: "Color the background instead of the text of files.",
	},
	OptionColorBackgroundFolder: {
		Key:         OptionColorBackgroundFolder,
		Alias:       "color-background-folder",
		Name:        "Color Folder Background",
		Description: "Color the background instead of the text of folders.",
	},
}

// Info returns the display info for the key.
func (k OptionKey) Info() OptionInfo {
	return optionInfo[k]
}

// Valid returns true if the key names a known option.
func (k OptionKey) Valid() bool {
	_, ok := optionInfo[k]
	return ok
}

// ParseOptionKey accepts the camelCase key or its kebab-case alias, case-insensitively.
func ParseOptionKey(s string) (OptionKey, bool) {
	s = strings.TrimSpace(s)
	for _, key := range OptionKeys {
		info := optionInfo[key]
		if strings.EqualFold(s, string(key)) || strings.EqualFold(s, info.Alias) {
			return key, true
		}
	}
	return "", false
}

// Options holds the three boolean plugin options.
type Options struct {
	CascadeColors         bool `json:"cascadeColors"`
	ColorBackgroundFile   bool `json:"colorBackgroundFile"`
	ColorBackgroundFolder bool `json:"colorBackgroundFolder"`
}

// Get returns the value of the named option. Unknown keys read as false.
func (o Options) Get(key OptionKey) bool {
	switch key {
	case OptionCascadeColors:
		return o.CascadeColors
	case OptionColorBackgroundFile:
		return o.ColorBackgroundFile
	case OptionColorBackgroundFolder:
		return o.ColorBackgroundFolder
	}
	return false
}

// Set assigns the named option. Returns false for unknown keys.
func (o *Options) Set(key OptionKey, value bool) bool {
	switch key {
	case OptionCascadeColors:
		o.CascadeColors = value
	case OptionColorBackgroundFile:
		o.ColorBackgroundFile = value
	case OptionColorBackgroundFolder:
		o.ColorBackgroundFolder = value
	default:
		return false
	}
	return true
}

// Options returns the boolean options of the settings.
func (s *PluginSettings) Options() Options {
	return Options{
		CascadeColors:         s.CascadeColors,
		ColorBackgroundFile:   s.ColorBackgroundFile,
		ColorBackgroundFolder: s.ColorBackgroundFolder,
	}
}

// Option returns the value of a single option.
func (s *PluginSettings) Option(key OptionKey) bool {
	return s.Options().Get(key)
}

// SetOption assigns a single option. Returns false for unknown keys.
func (s *PluginSettings) SetOption(key OptionKey, value bool) bool {
	opts := s.Options()
	if !opts.Set(key, value) {
		return false
	}
	s.CascadeColors = opts.CascadeColors
	s.ColorBackgroundFile = opts.ColorBackgroundFile
	s.ColorBackgroundFolder = opts.ColorBackgroundFolder
	return true
}
