package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/balkashynov/circuit/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "menus.json"))
}

func TestStore_PutGet(t *testing.T) {
	s := newTestStore(t)

	existed, err := s.Put(mustMenu(t, "legs", 40, 20, 3))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if existed {
		t.Fatal("first Put should not report an overwrite")
	}

	got, err := s.Get("legs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.WorkSeconds != 40 {
		t.Fatalf("got %+v", got)
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Put(mustMenu(t, "legs", 40, 20, 3)); err != nil {
		t.Fatal(err)
	}

	existed, err := s.Put(mustMenu(t, "legs", 60, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !existed {
		t.Fatal("second Put should report an overwrite")
	}

	menus, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(menus) != 1 || menus["legs"].WorkSeconds != 60 {
		t.Fatalf("got %+v", menus)
	}
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Put(mustMenu(t, "legs", 40, 20, 3)); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("legs"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("legs"); !errors.Is(err, models.ErrMenuNotFound) {
		t.Fatalf("Get after delete: err = %v", err)
	}
	if err := s.Delete("legs"); !errors.Is(err, models.ErrMenuNotFound) {
		t.Fatalf("second Delete: err = %v, want ErrMenuNotFound", err)
	}
}

func TestStore_Path(t *testing.T) {
	s := New("/tmp/x/menus.json")
	if s.Path() != "/tmp/x/menus.json" {
		t.Fatalf("Path = %q", s.Path())
	}
}
