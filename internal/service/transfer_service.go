package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/store"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ExportFormats lists the accepted export formats.
var ExportFormats = []string{FormatJSON, FormatTOML}

// TransferService moves settings in and out of a vault.
type TransferService struct {
	host Host
}

// NewTransferService creates a new transfer service.
func NewTransferService(host Host) *TransferService {
	return &TransferService{host: host}
}

// Export writes the current settings to w in the given format.
func (s *TransferService) Export(w io.Writer, format string) error {
	var asTOML bool
	switch strings.ToLower(format) {
	case FormatJSON, "":
	case FormatTOML:
		asTOML = true
	default:
		return fcerr.InvalidField("format", fmt.Sprintf("%q (expected json or toml)", format))
	}

	data, err := store.EncodeSettings(s.host.Settings(), asTOML)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if !asTOML {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// ImportResult describes what an import replaced.
type ImportResult struct {
	Colors      int `json:"colors"`
	Assignments int `json:"assignments"`
	Pruned      int `json:"pruned"`
}

// Import replaces the vault's settings with the contents of path. Files ending
// in .toml are read as TOML, anything else as JSON. Assignments to colors not
// in the imported palette are dropped.
func (s *TransferService) Import(path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fcerr.InvalidField("file", path+" is empty")
	}

	imported, err := store.DecodeSettings(data, store.IsTOMLPath(path))
	if err != nil {
		return nil, fcerr.InvalidField("file", err.Error())
	}
	return s.apply(imported)
}

func (s *TransferService) apply(imported *model.PluginSettings) (*ImportResult, error) {
	before := len(imported.FileColors)
	imported.FileColors = model.PruneFileColors(imported.FileColors, imported.Palette)

	settings := s.host.Settings()
	*settings = *imported

	result := &ImportResult{
		Colors:      len(settings.Palette),
		Assignments: len(settings.FileColors),
		Pruned:      before - len(settings.FileColors),
	}

	saveErr := s.host.SaveSettings()
	s.host.GenerateColorStyles()
	applyErr := s.host.ApplyColorStyles()
	return result, errors.Join(saveErr, applyErr)
}
