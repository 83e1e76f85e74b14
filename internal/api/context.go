package api

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/id"
	"github.com/amterp/filecolor/internal/plugin"
	"github.com/amterp/filecolor/internal/service"
)

// Host is the plugin runtime the API edits: the controller's host plus the
// reload and rendering hooks the server needs.
type Host interface {
	service.Host
	Reload() (bool, error)
	Stylesheet() string
}

// VaultContext bundles the per-vault dependencies needed by the HTTP handlers.
type VaultContext struct {
	Paths       *config.Paths
	Host        Host
	Controller  *service.DraftController
	Assignments *service.AssignmentService
	VaultRoot   string
}

// BuildVaultContext wires a VaultContext for the vault at vaultRoot.
// It reads the settings but performs no disk writes.
func BuildVaultContext(vaultRoot string, logger *log.Logger) (*VaultContext, error) {
	if _, err := os.Stat(vaultRoot); err != nil {
		return nil, fmt.Errorf("vault path does not exist: %s", vaultRoot)
	}

	p, err := plugin.Open(vaultRoot, logger)
	if err != nil {
		return nil, err
	}
	return NewVaultContext(p, vaultRoot), nil
}

// NewVaultContext wires a VaultContext around an existing host.
func NewVaultContext(host Host, vaultRoot string) *VaultContext {
	return &VaultContext{
		Paths:       config.NewPaths(vaultRoot),
		Host:        host,
		Controller:  service.NewDraftController(host, id.Generate),
		Assignments: service.NewAssignmentService(host, vaultRoot),
		VaultRoot:   vaultRoot,
	}
}
