package resolver

import (
	"path/filepath"
	"strings"

	fcerr "github.com/amterp/filecolor/internal/errors"
)

// VaultPath converts a user-supplied path into the vault-relative,
// forward-slash form the plugin stores in fileColors.
// Absolute paths must lie inside vaultRoot; relative paths are taken as
// relative to the vault root already.
func VaultPath(vaultRoot, path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", fcerr.InvalidField("path", "must not be empty")
	}

	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(vaultRoot, p)
		if err != nil {
			return "", fcerr.InvalidField("path", err.Error())
		}
		p = rel
	}

	p = filepath.ToSlash(filepath.Clean(p))
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimSuffix(p, "/")

	if p == "." || p == "" {
		return "", fcerr.InvalidField("path", "must name a file or folder inside the vault")
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", fcerr.InvalidField("path", "is outside the vault: "+path)
	}
	return p, nil
}
