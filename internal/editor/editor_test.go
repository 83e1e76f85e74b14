package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/amterp/filecolor/internal/model"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestResolve_Order(t *testing.T) {
	tests := []struct {
		name   string
		config *model.GlobalConfig
		env    map[string]string
		want   string
	}{
		{"config wins", &model.GlobalConfig{Editor: "nano"}, map[string]string{"VISUAL": "code", "EDITOR": "vim"}, "nano"},
		{"visual before editor", nil, map[string]string{"VISUAL": "code", "EDITOR": "vim"}, "code"},
		{"editor", &model.GlobalConfig{}, map[string]string{"EDITOR": "vim"}, "vim"},
		{"default", nil, nil, "vi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditor(tt.config)
			e.getenv = fakeEnv(tt.env)
			if got := e.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpen_PassesConfiguredArgs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	// Appends its arguments to the file named last
	content := "#!/bin/sh\nfor last; do :; done\necho \"$@\" >> \"$last\"\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "data.json")
	if err := os.WriteFile(target, nil, 0644); err != nil {
		t.Fatal(err)
	}

	e := NewEditor(&model.GlobalConfig{Editor: script + " --wait"})
	if err := e.Open(target); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	got, _ := os.ReadFile(target)
	if want := "--wait " + target + "\n"; string(got) != want {
		t.Errorf("editor saw %q, want %q", got, want)
	}
}

func TestOpen_FailingEditor(t *testing.T) {
	e := NewEditor(&model.GlobalConfig{Editor: filepath.Join(t.TempDir(), "missing-editor")})
	if err := e.Open("data.json"); err == nil {
		t.Error("expected error for missing editor binary")
	}
}
