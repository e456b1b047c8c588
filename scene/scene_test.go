// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesBodiesAndEquations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "freefall.yaml")
	content := `
dt: 0.01
bodies:
  - name: A
    mass: 1
    width: 1
    height: 1
    x: 0
    y: 100
equations:
  - "a_A = -100*hatj"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if doc.DT != 0.01 {
		t.Errorf("dt = %g, want 0.01", doc.DT)
	}
	if len(doc.Bodies) != 1 || doc.Bodies[0].Name != "A" {
		t.Fatalf("got bodies %#v, want one body named A", doc.Bodies)
	}
	if len(doc.Equations) != 1 {
		t.Fatalf("got %d equations, want 1", len(doc.Equations))
	}
}

func TestLoadDefaultsDTWhenUnset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noDT.yaml")
	if err := os.WriteFile(path, []byte("bodies: []\nequations: []\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if doc.DT != 1.0/60.0 {
		t.Errorf("default dt = %g, want 1/60", doc.DT)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/scene.yaml"); err == nil {
		t.Error("expected an error for a missing scene file")
	}
}
