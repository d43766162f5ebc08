package geometry

import (
	"os"
	"path/filepath"
	"testing"
)

const validHullJSON = `{
  "name": "test barge",
  "profiles": [
    {"station": 0, "points": [
      {"x": 0, "y": 0.5, "z": 0.5},
      {"x": 0, "y": 0.5, "z": -0.5},
      {"x": 0, "y": -0.5, "z": -0.5},
      {"x": 0, "y": -0.5, "z": 0.5}
    ]},
    {"station": 2, "points": [
      {"x": 2, "y": 0.5, "z": 0.5},
      {"x": 2, "y": 0.5, "z": -0.5},
      {"x": 2, "y": -0.5, "z": -0.5},
      {"x": 2, "y": -0.5, "z": 0.5}
    ]}
  ],
  "bow": [{"x": 2.4, "y": 0, "z": -0.5}]
}`

func writeTempHull(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hull.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp hull: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	hull, err := LoadFromFile(writeTempHull(t, validHullJSON))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if hull.Name != "test barge" {
		t.Errorf("Name = %q, want %q", hull.Name, "test barge")
	}
	if len(hull.Profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(hull.Profiles))
	}
	if len(hull.Bow) != 1 {
		t.Errorf("got %d bow points, want 1", len(hull.Bow))
	}
	if got := hull.Length(); got != 2.4 {
		t.Errorf("Length() = %v, want 2.4", got)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := LoadFromFile(writeTempHull(t, "{not json")); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})

	t.Run("invalid hull", func(t *testing.T) {
		if _, err := LoadFromFile(writeTempHull(t, `{"name": "x", "profiles": []}`)); err == nil {
			t.Error("expected a validation error for an empty hull")
		}
	})
}
