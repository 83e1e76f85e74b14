package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/amterp/filecolor/internal/model"
)

// Editor handles editor resolution and invocation.
type Editor struct {
	globalConfig *model.GlobalConfig
	getenv       func(string) string
}

// NewEditor creates a new Editor. globalConfig may be nil.
func NewEditor(globalConfig *model.GlobalConfig) *Editor {
	return &Editor{globalConfig: globalConfig, getenv: os.Getenv}
}

// Resolve returns the editor command to use.
// Order: global config > $VISUAL > $EDITOR > vi
func (e *Editor) Resolve() string {
	// 1. Global config
	if e.globalConfig != nil && e.globalConfig.Editor != "" {
		return e.globalConfig.Editor
	}

	// 2. Environment variables
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if editor := e.getenv(name); editor != "" {
			return editor
		}
	}

	// 3. Default
	return "vi"
}

// Open runs the editor on path and waits for it to exit. The editor setting
// may carry arguments, e.g. "code --wait".
func (e *Editor) Open(path string) error {
	fields := strings.Fields(e.Resolve())
	if len(fields) == 0 {
		return fmt.Errorf("no editor configured")
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", fields[0], err)
	}
	return nil
}
