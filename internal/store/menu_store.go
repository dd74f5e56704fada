package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/circuit/internal/models"
)

// Load reads menus from path. A missing file is an empty store.
// Duplicate names in the file resolve to the last entry.
func Load(path string) (map[string]models.Menu, error) {
	menus := make(map[string]models.Menu)

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return menus, nil
		}
		return nil, &models.StorageError{Op: "load", Path: path, Err: fmt.Errorf("read menu file: %w", err)}
	}

	records, err := decode(path, rawData)
	if err != nil {
		return nil, &models.StorageError{Op: "load", Path: path, Err: err}
	}

	for _, menu := range records {
		menus[menu.Name] = menu
	}

	return menus, nil
}

// Save writes menus to path sorted by name. The file is replaced by rename,
// so readers never observe a partial write.
func Save(menus map[string]models.Menu, path string) error {
	records := sortedMenus(menus)
	for _, record := range records {
		if _, err := record.Validate(); err != nil {
			return &models.StorageError{Op: "save", Path: path, Err: err}
		}
	}

	serialized, err := encode(path, records)
	if err != nil {
		return &models.StorageError{Op: "save", Path: path, Err: err}
	}

	if err := writeAtomic(path, serialized); err != nil {
		return &models.StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// SortedNames returns the menu names in display order
func SortedNames(menus map[string]models.Menu) []string {
	names := make([]string, 0, len(menus))
	for name := range menus {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedMenus(menus map[string]models.Menu) []models.Menu {
	records := make([]models.Menu, 0, len(menus))
	for _, name := range SortedNames(menus) {
		records = append(records, menus[name])
	}
	return records
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// menuRecord is the on-disk shape of a menu. Pointer fields tell a missing
// key apart from a zero value.
type menuRecord struct {
	Name        *string `json:"name" yaml:"name"`
	WorkSeconds *int    `json:"set_seconds" yaml:"set_seconds"`
	RestSeconds *int    `json:"rest_seconds" yaml:"rest_seconds"`
	Sets        *int    `json:"sets" yaml:"sets"`
}

func (r menuRecord) menu() (models.Menu, error) {
	switch {
	case r.Name == nil:
		return models.Menu{}, errMissingField("name")
	case r.WorkSeconds == nil:
		return models.Menu{}, errMissingField("set_seconds")
	case r.RestSeconds == nil:
		return models.Menu{}, errMissingField("rest_seconds")
	case r.Sets == nil:
		return models.Menu{}, errMissingField("sets")
	}
	return models.NewMenu(*r.Name, *r.WorkSeconds, *r.RestSeconds, *r.Sets)
}

func errMissingField(field string) error {
	return &models.ValidationError{Field: field, Reason: "missing"}
}

func decode(path string, rawData []byte) ([]models.Menu, error) {
	if len(bytes.TrimSpace(rawData)) == 0 {
		return nil, fmt.Errorf("menu file is empty")
	}

	var records []menuRecord
	if isYAML(path) {
		decoder := yaml.NewDecoder(bytes.NewReader(rawData))
		decoder.KnownFields(true)
		if err := decoder.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse menu yaml: %w", err)
		}
		var extra yaml.Node
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse menu yaml: unexpected content after the menu list")
		}
	} else {
		decoder := json.NewDecoder(bytes.NewReader(rawData))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse menu json: %w", err)
		}
		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse menu json: unexpected content after the menu list")
		}
	}

	menus := make([]models.Menu, 0, len(records))
	for i, record := range records {
		menu, err := record.menu()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

func encode(path string, records []models.Menu) ([]byte, error) {
	if isYAML(path) {
		serialized, err := yaml.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("marshal menu yaml: %w", err)
		}
		return serialized, nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("marshal menu json: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create menu directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace menu file: %w", err)
	}
	return nil
}
