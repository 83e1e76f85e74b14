package service

import (
	"path/filepath"
	"testing"

	fcerr "github.com/amterp/filecolor/internal/errors"
)

func newTestAssignmentService(t *testing.T) (*AssignmentService, *fakeHost, string) {
	t.Helper()
	root := t.TempDir()
	host := newFakeHost(twoColorSettings())
	return NewAssignmentService(host, root), host, root
}

func TestAssignmentService_AssignByName(t *testing.T) {
	svc, host, _ := newTestAssignmentService(t)

	a, err := svc.Assign("notes/today.md", "blue")
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if a.Path != "notes/today.md" || a.Color != "b" {
		t.Errorf("unexpected assignment: %+v", a)
	}
	if host.saves != 1 || host.applies != 1 {
		t.Errorf("expected one save and apply, got %d/%d", host.saves, host.applies)
	}
}

func TestAssignmentService_AssignAbsolutePath(t *testing.T) {
	svc, host, root := newTestAssignmentService(t)

	if _, err := svc.Assign(filepath.Join(root, "projects"), "a"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if got := host.settings.GetAssignment("projects"); got == nil || got.Color != "a" {
		t.Errorf("expected vault-relative assignment, got %+v", host.settings.FileColors)
	}
}

func TestAssignmentService_ReassignReplaces(t *testing.T) {
	svc, host, _ := newTestAssignmentService(t)

	svc.Assign("x.md", "a")
	svc.Assign("./x.md", "b")

	if len(host.settings.FileColors) != 1 || host.settings.FileColors[0].Color != "b" {
		t.Errorf("expected single reassigned entry, got %+v", host.settings.FileColors)
	}
}

func TestAssignmentService_UnknownColor(t *testing.T) {
	svc, host, _ := newTestAssignmentService(t)

	_, err := svc.Assign("x.md", "purple")
	if !fcerr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if host.saves != 0 {
		t.Error("expected no save on failure")
	}
}

func TestAssignmentService_Unassign(t *testing.T) {
	svc, host, _ := newTestAssignmentService(t)
	svc.Assign("x.md", "a")

	if err := svc.Unassign("x.md"); err != nil {
		t.Fatalf("Unassign failed: %v", err)
	}
	if len(host.settings.FileColors) != 0 {
		t.Errorf("expected no assignments, got %+v", host.settings.FileColors)
	}
	if err := svc.Unassign("x.md"); !fcerr.IsNotFound(err) {
		t.Errorf("expected not found on second unassign, got %v", err)
	}
}

func TestAssignmentService_ListSorted(t *testing.T) {
	svc, _, _ := newTestAssignmentService(t)
	svc.Assign("z.md", "a")
	svc.Assign("a.md", "b")

	list := svc.List()
	if len(list) != 2 || list[0].Path != "a.md" || list[1].Path != "z.md" {
		t.Errorf("expected sorted list, got %+v", list)
	}
}
