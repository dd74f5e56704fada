package store

import (
	"fmt"
	"strings"

	"github.com/balkashynov/circuit/internal/models"
)

// Store is a menu file bound to a configured location
type Store struct {
	path string
}

// New creates a store for the menu file at path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location
func (s *Store) Path() string {
	return s.path
}

// Load reads every menu in the store
func (s *Store) Load() (map[string]models.Menu, error) {
	return Load(s.path)
}

// Save replaces the store contents with menus
func (s *Store) Save(menus map[string]models.Menu) error {
	return Save(menus, s.path)
}

// Get looks up a single menu by name
func (s *Store) Get(name string) (models.Menu, error) {
	menus, err := s.Load()
	if err != nil {
		return models.Menu{}, err
	}
	menu, ok := menus[strings.TrimSpace(name)]
	if !ok {
		return models.Menu{}, fmt.Errorf("%w: %q", models.ErrMenuNotFound, name)
	}
	return menu, nil
}

// Put saves menu, replacing any menu with the same name.
// It reports whether an existing menu was overwritten.
func (s *Store) Put(menu models.Menu) (bool, error) {
	menus, err := s.Load()
	if err != nil {
		return false, err
	}
	_, existed := menus[menu.Name]
	menus[menu.Name] = menu
	if err := s.Save(menus); err != nil {
		return false, err
	}
	return existed, nil
}

// Delete removes the named menu
func (s *Store) Delete(name string) error {
	menus, err := s.Load()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if _, ok := menus[name]; !ok {
		return fmt.Errorf("%w: %q", models.ErrMenuNotFound, name)
	}
	delete(menus, name)
	return s.Save(menus)
}
