package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/balkashynov/circuit/internal/models"
)

func mustMenu(t *testing.T, name string, work, rest, sets int) models.Menu {
	t.Helper()
	m, err := models.NewMenu(name, work, rest, sets)
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	return m
}

func sampleMenus(t *testing.T) map[string]models.Menu {
	t.Helper()
	menus := map[string]models.Menu{}
	for _, m := range []models.Menu{
		mustMenu(t, "腹筋サーキット", 45, 15, 4),
		mustMenu(t, "burpees", 30, 0, 5),
		mustMenu(t, "plank", 60, 30, 1),
	} {
		menus[m.Name] = m
	}
	return menus
}

func TestLoad_MissingFile(t *testing.T) {
	menus, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(menus) != 0 {
		t.Fatalf("got %d menus, want empty", len(menus))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"menus.json", "menus.yaml", "menus.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleMenus(t)

			if err := Save(want, path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d menus, want %d", len(got), len(want))
			}
			for name, m := range want {
				if got[name] != m {
					t.Fatalf("menu %q = %+v, want %+v", name, got[name], m)
				}
			}
		})
	}
}

func TestSave_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.json")
	if err := Save(sampleMenus(t), path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(raw)

	// Non-ASCII names are written as-is, not \u-escaped.
	if !strings.Contains(text, "腹筋サーキット") {
		t.Fatalf("expected raw UTF-8 name in file:\n%s", text)
	}
	for _, key := range []string{`"name"`, `"set_seconds"`, `"rest_seconds"`, `"sets"`} {
		if !strings.Contains(text, key) {
			t.Fatalf("missing key %s in:\n%s", key, text)
		}
	}
	// Sorted by name: "burpees" < "plank" < the Japanese name.
	if !(strings.Index(text, "burpees") < strings.Index(text, "plank") &&
		strings.Index(text, "plank") < strings.Index(text, "腹筋サーキット")) {
		t.Fatalf("records not sorted by name:\n%s", text)
	}
}

func TestSave_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	if err := Save(sampleMenus(t), a); err != nil {
		t.Fatal(err)
	}
	if err := Save(sampleMenus(t), b); err != nil {
		t.Fatal(err)
	}
	rawA, _ := os.ReadFile(a)
	rawB, _ := os.ReadFile(b)
	if string(rawA) != string(rawB) {
		t.Fatal("saving the same menus twice should produce identical files")
	}
}

func TestSave_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	if err := Save(sampleMenus(t), filepath.Join(dir, "menus.json")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only menus.json, found %v", names)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "menus.json")
	if err := Save(sampleMenus(t), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
}

func TestSave_RejectsInvalidMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.json")
	bad := map[string]models.Menu{"bad": {Name: "bad", WorkSeconds: 0, Sets: 1}}

	err := Save(bad, path)
	var serr *models.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StorageError", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatal("no file should be written for an invalid menu")
	}
}

func TestLoad_DuplicateNamesLastWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.json")
	content := `[
  {"name": "legs", "set_seconds": 30, "rest_seconds": 10, "sets": 2},
  {"name": "legs", "set_seconds": 50, "rest_seconds": 0, "sets": 4}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	menus, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(menus) != 1 {
		t.Fatalf("got %d menus, want 1", len(menus))
	}
	if menus["legs"].WorkSeconds != 50 || menus["legs"].Sets != 4 {
		t.Fatalf("got %+v, want the last entry", menus["legs"])
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":      `{{{`,
		"object":        `{"name": "x"}`,
		"empty":         ``,
		"bad record":    `[{"name": "x", "set_seconds": 0, "rest_seconds": 0, "sets": 1}]`,
		"empty name":    `[{"name": " ", "set_seconds": 10, "rest_seconds": 0, "sets": 1}]`,
		"wrong type":    `[{"name": "x", "set_seconds": "ten", "rest_seconds": 0, "sets": 1}]`,
		"unknown field": `[{"name": "x", "set_seconds": 10, "rest_seconds": 0, "sets": 1, "extra": true}]`,
		"trailing data": `[{"name": "x", "set_seconds": 10, "rest_seconds": 0, "sets": 1}] garbage{{{`,
		"second array":  `[] []`,
		"missing rest":  `[{"name": "x", "set_seconds": 10, "sets": 1}]`,
		"missing name":  `[{"set_seconds": 10, "rest_seconds": 0, "sets": 1}]`,
		"null record":   `[null]`,
		"too many sets": `[{"name": "x", "set_seconds": 10, "rest_seconds": 0, "sets": 1000000000}]`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			assertLoadFails(t, "menus.json", content)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	tests := map[string]string{
		"unknown field": "- name: x\n  set_seconds: 10\n  rest_seconds: 0\n  sets: 1\n  bogus: 1\n",
		"missing sets":  "- name: x\n  set_seconds: 10\n  rest_seconds: 0\n",
		"second doc":    "- name: x\n  set_seconds: 10\n  rest_seconds: 0\n  sets: 1\n---\n- name: y\n",
		"mapping":       "name: x\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			assertLoadFails(t, "menus.yaml", content)
		})
	}
}

func assertLoadFails(t *testing.T, file, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), file)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var serr *models.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StorageError", err)
	}
	if serr.Op != "load" || serr.Path != path {
		t.Fatalf("got op=%q path=%q", serr.Op, serr.Path)
	}
}

func TestSortedNames(t *testing.T) {
	names := SortedNames(sampleMenus(t))
	if len(names) != 3 || names[0] != "burpees" || names[1] != "plank" {
		t.Fatalf("SortedNames = %v", names)
	}
}
