package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/farmstead/pkg/types"
)

func TestParseWorldLayout(t *testing.T) {
	yamlContent := `
size: {w: 640, h: 480}
playerStart: {x: 100, y: 120}
colliders:
  - {x: 0, y: 0, w: 64, h: 64}
interactions:
  - {name: Bed, x: 200, y: 200, w: 64, h: 128}
trees:
  - {x: 300, y: 50, size: Small, art: {w: 64, h: 96}}
decorations:
  - {kind: house, layer: house_bottom, x: 0, y: 300, w: 128, h: 128}
  - {kind: wildflower, collide: true, x: 10, y: 10, w: 32, h: 32}
farmable:
  - {col: 2, row: 2, cols: 3, rows: 2}
`
	layout, err := ParseWorldLayout([]byte(yamlContent))
	if err != nil {
		t.Fatalf("ParseWorldLayout() error = %v", err)
	}

	if len(layout.Interactions) != 1 || layout.Interactions[0].Name != "Bed" {
		t.Fatalf("unexpected interactions: %+v", layout.Interactions)
	}
	// inline 字段应被正确展开
	if layout.Interactions[0].H != 128 {
		t.Errorf("interaction height = %v, want 128", layout.Interactions[0].H)
	}
	if layout.Decorations[0].DecorationLayer() != types.LayerHouseBottom {
		t.Errorf("decoration layer = %v, want house_bottom", layout.Decorations[0].DecorationLayer())
	}
	if layout.Decorations[1].DecorationLayer() != types.LayerMain {
		t.Errorf("default decoration layer = %v, want main", layout.Decorations[1].DecorationLayer())
	}
}

func TestWorldLayoutValidate(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{"zero size", "size: {w: 0, h: 10}", "size must be positive"},
		{"bad tree size", "size: {w: 10, h: 10}\ntrees: [{x: 0, y: 0, size: Huge, art: {w: 1, h: 1}}]", `unknown size "Huge"`},
		{"unnamed zone", "size: {w: 10, h: 10}\ninteractions: [{x: 0, y: 0, w: 1, h: 1}]", "name is empty"},
		{"bad layer", "size: {w: 10, h: 10}\ndecorations: [{kind: generic, layer: sky, x: 0, y: 0, w: 1, h: 1}]", `unknown layer "sky"`},
		{"bad farmable", "size: {w: 10, h: 10}\nfarmable: [{col: 0, row: 0, cols: 0, rows: 1}]", "invalid cell rect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorldLayout([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err, tt.errContains)
			}
		})
	}
}

func TestShippedWorldLayout(t *testing.T) {
	path := filepath.Join("..", "..", "data", "world.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("shipped world layout not found: %v", err)
	}
	layout, err := LoadWorldLayout(path)
	if err != nil {
		t.Fatalf("LoadWorldLayout() error = %v", err)
	}
	if len(layout.Trees) == 0 {
		t.Error("shipped world should contain trees")
	}
	names := map[string]bool{}
	for _, it := range layout.Interactions {
		names[it.Name] = true
	}
	if !names["Bed"] || !names["Trader"] {
		t.Errorf("shipped world should contain Bed and Trader zones, got %v", names)
	}
}
