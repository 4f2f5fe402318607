package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of an entry import file.
type ImportSchema struct {
	Entries []EntryImport `json:"entries" yaml:"entries"`
}

// EntryImport is one entry in the import file.
type EntryImport struct {
	Title       string        `json:"title" yaml:"title"`
	Type        string        `json:"type" yaml:"type"`
	Date        string        `json:"date" yaml:"date"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Coauthors   []string      `json:"coauthors,omitempty" yaml:"coauthors,omitempty"`
	Keywords    []string      `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Grades      []GradeImport `json:"grades" yaml:"grades"`
}

// GradeImport references a competency of the active profile by name.
type GradeImport struct {
	Competency string `json:"competency" yaml:"competency"`
	Level      int    `json:"level" yaml:"level"`
}

// LoadImportSchema reads an import file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

func ParseYAML(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
