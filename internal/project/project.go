// Package project handles JSON persistence of nesting projects, the shape
// catalog, and application configuration under ~/.steelnest/.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cesliva/steelnest/internal/model"
)

// SaveProject writes a project to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the specified JSON file.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Lines == nil {
		p.Lines = []model.LineItem{}
	}
	return p, nil
}
