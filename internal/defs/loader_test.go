package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseScene(t *testing.T) {
	data := []byte(`{
		"name": "test",
		"background": {"light": "#fff", "dark": "#111"},
		"shapes": [
			{"kind": "circle", "x": 10, "y": 20, "radius": 5, "fill": "red",
			 "behaviors": [{"type": "bounce"}, {"type": "collide", "push": 3}]}
		],
		"spawns": [
			{"count": 3, "minRadius": 5, "maxRadius": 10,
			 "entries": [{"kind": "square", "weight": 2}, {"kind": "ring", "weight": 1}]}
		]
	}`)
	def, err := ParseScene(data)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "test" || len(def.Shapes) != 1 || len(def.Spawns) != 1 {
		t.Fatalf("def = %+v", def)
	}
	s := def.Shapes[0]
	if s.Kind != KindCircle || s.Radius != 5 || len(s.Behaviors) != 2 || s.Behaviors[1].Push != 3 {
		t.Fatalf("shape = %+v", s)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown kind", `{"shapes": [{"kind": "blob"}]}`, ErrUnknownKind},
		{"unknown behavior", `{"shapes": [{"kind": "circle", "behaviors": [{"type": "fly"}]}]}`, ErrUnknownBehavior},
		{"empty spawn", `{"spawns": [{"count": 2}]}`, ErrInvalidScene},
		{"radius range", `{"spawns": [{"count": 1, "minRadius": 9, "maxRadius": 3, "entries": [{"kind": "circle", "weight": 1}]}]}`, ErrInvalidScene},
		{"spawn kind", `{"spawns": [{"count": 1, "entries": [{"kind": "blob", "weight": 1}]}]}`, ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := ParseScene([]byte(`{`)); err == nil {
		t.Fatal("expected error for broken JSON")
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(`{"name": "file", "shapes": [{"kind": "wave"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	def, err := LoadScene(path)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "file" {
		t.Fatalf("name = %q", def.Name)
	}
	if _, err := LoadScene(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err = %v", err)
	}
}

func TestDefaultSceneIsValid(t *testing.T) {
	if _, err := LoadScene(filepath.Join("..", "..", "assets", "scenes", "default.json")); err != nil {
		t.Fatal(err)
	}
}
