package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Cesliva/steelnest/internal/model"
)

// DefaultCatalogPath returns the default file path for the shape catalog.
// This is located at ~/.steelnest/catalog.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".steelnest", "catalog.json"), nil
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return model.DefaultCatalog(), "", err
	}
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// ImportCatalog imports a catalog from a user-specified JSON file, merging it
// with the existing catalog. Duplicate IDs are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	seenShapes := make(map[string]bool)
	for _, s := range existing.Shapes {
		seenShapes[s.ID] = true
	}
	for _, s := range imported.Shapes {
		if !seenShapes[s.ID] {
			existing.Shapes = append(existing.Shapes, s)
		}
	}

	seenLengths := make(map[string]bool)
	for _, l := range existing.StockLengths {
		seenLengths[l.ID] = true
	}
	for _, l := range imported.StockLengths {
		if !seenLengths[l.ID] {
			existing.StockLengths = append(existing.StockLengths, l)
		}
	}

	return existing, nil
}
