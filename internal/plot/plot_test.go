package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lvorbit/internal/orbit"
)

func orbitPoints() []orbit.Point {
	return []orbit.Point{
		{Prey: 20, Predator: 51.5},
		{Prey: 20, Predator: 0.3},
		{Prey: 1.5, Predator: 10},
		{Prey: 82, Predator: 10},
		{Prey: 50, Predator: 40},
	}
}

func TestRender_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	r := NewRenderer(dir, 320, 320)

	path, err := r.Render("x50y40", "Predator (y) vs Prey (x)", orbitPoints())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if filepath.Ext(path) != ".svg" {
		t.Errorf("expected .svg file, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("plot file unreadable: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "<svg") {
		t.Error("missing svg root element")
	}
	if !strings.Contains(content, "Prey population") || !strings.Contains(content, "Predator population") {
		t.Error("missing axis labels")
	}
	if strings.Count(content, "<circle") != len(orbitPoints()) {
		t.Errorf("expected %d markers, got %d", len(orbitPoints()), strings.Count(content, "<circle"))
	}
}

func TestRender_CreatesOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "plots")
	r := NewRenderer(dir, 320, 320)

	if _, err := r.Render("orbit", "t", orbitPoints()); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestRender_NoPoints(t *testing.T) {
	r := NewRenderer(t.TempDir(), 320, 320)
	if _, err := r.Render("empty", "t", nil); err == nil {
		t.Error("expected error for empty point set")
	}
}

func TestRender_OutDirNotCreatable(t *testing.T) {
	// a regular file where the directory should go
	blocker := filepath.Join(t.TempDir(), "plots")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer(blocker, 320, 320)
	if _, err := r.Render("orbit", "t", orbitPoints()); err == nil {
		t.Error("expected error when out dir path is a file")
	}
}

func TestBranchGraph(t *testing.T) {
	pts := []orbit.Point{
		{Prey: 20, Predator: 10},
		{Prey: 21, Predator: 12},
		{Prey: 22, Predator: 13},
	}

	out := BranchGraph(pts, "upper branch")
	if out == "" {
		t.Fatal("expected graph output")
	}
	if !strings.Contains(out, "upper branch") {
		t.Error("missing caption")
	}

	if BranchGraph(nil, "empty") != "" {
		t.Error("expected empty output for no points")
	}
}
