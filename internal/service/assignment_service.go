package service

import (
	"errors"
	"sort"

	fcerr "github.com/amterp/filecolor/internal/errors"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/resolver"
)

// AssignmentService manages the fileColors list of a vault.
type AssignmentService struct {
	host      Host
	vaultRoot string
}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService(host Host, vaultRoot string) *AssignmentService {
	return &AssignmentService{host: host, vaultRoot: vaultRoot}
}

// Assign colors a file or folder. colorRef is a palette ID or a unique name.
// An existing assignment for the same path is replaced.
func (s *AssignmentService) Assign(path, colorRef string) (model.FileColorAssignment, error) {
	rel, err := resolver.VaultPath(s.vaultRoot, path)
	if err != nil {
		return model.FileColorAssignment{}, err
	}

	settings := s.host.Settings()
	color, err := resolver.ResolveColor(settings.Palette, colorRef)
	if err != nil {
		return model.FileColorAssignment{}, err
	}

	settings.SetAssignment(rel, color.ID)
	assignment := model.FileColorAssignment{Path: rel, Color: color.ID}
	return assignment, s.persist()
}

// Unassign removes the color from a file or folder.
func (s *AssignmentService) Unassign(path string) error {
	rel, err := resolver.VaultPath(s.vaultRoot, path)
	if err != nil {
		return err
	}

	if !s.host.Settings().RemoveAssignment(rel) {
		return fcerr.AssignmentNotFound(rel)
	}
	return s.persist()
}

// List returns all assignments sorted by path.
func (s *AssignmentService) List() []model.FileColorAssignment {
	fileColors := s.host.Settings().FileColors
	out := make([]model.FileColorAssignment, len(fileColors))
	copy(out, fileColors)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

func (s *AssignmentService) persist() error {
	return errors.Join(s.host.SaveSettings(), s.host.ApplyColorStyles())
}
