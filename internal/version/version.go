package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the filecolor release, overridden at build time via -ldflags.
var Version = "0.1.0"

// Current schema versions - bump these when making breaking changes.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinFilecolorVersion map (tested by TestMinVersionCompleteness)
//  3. Teach FileGlobalStore.Load to upgrade the previous schema
const (
	CurrentGlobalVersion = 1
)

// GlobalSchemaPrefix prefixes the global config schema identifier.
const GlobalSchemaPrefix = "global/"

// MinFilecolorVersion maps schema identifiers to the minimum filecolor version required.
// Used to provide helpful upgrade messages when encountering newer schemas.
var MinFilecolorVersion = map[string]string{
	"global/1": "0.1.0",
}

// FormatGlobalSchema creates a global schema string from a version number.
// Example: FormatGlobalSchema(1) returns "global/1"
func FormatGlobalSchema(v int) string {
	return fmt.Sprintf("%s%d", GlobalSchemaPrefix, v)
}

// ParseGlobalVersion extracts the version number from a global schema string.
// Returns an error if the format is invalid.
func ParseGlobalVersion(schema string) (int, error) {
	if !strings.HasPrefix(schema, GlobalSchemaPrefix) {
		return 0, fmt.Errorf("invalid global schema format: %q (expected %sN)", schema, GlobalSchemaPrefix)
	}
	versionStr := strings.TrimPrefix(schema, GlobalSchemaPrefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid global schema version: %q", versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid global schema version: %d (must be >= 1)", v)
	}
	return v, nil
}

// CurrentGlobalSchema returns the current global schema string.
func CurrentGlobalSchema() string {
	return FormatGlobalSchema(CurrentGlobalVersion)
}
