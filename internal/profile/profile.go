// Package profile loads the specialty profiles that define competency sets.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// ErrUnknownSpecialty is returned by Catalog.Get for a missing specialty.
var ErrUnknownSpecialty = errors.New("unknown specialty")

type Competency struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type Profile struct {
	Specialty    string       `yaml:"specialty"`
	Competencies []Competency `yaml:"competencies"`
}

// Catalog is the set of known specialty profiles.
type Catalog struct {
	Default  string    `yaml:"default"`
	Profiles []Profile `yaml:"profiles"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultProfiles)
}

// Load reads a catalog file. An empty path means the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Default == "" {
		c.Default = c.Profiles[0].Specialty
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Profiles) == 0 {
		return errors.New("profiles: no specialties defined")
	}
	seen := map[string]bool{}
	for _, p := range c.Profiles {
		key := strings.ToLower(strings.TrimSpace(p.Specialty))
		if key == "" {
			return errors.New("profiles: specialty name is required")
		}
		if seen[key] {
			return fmt.Errorf("profiles: duplicate specialty %q", p.Specialty)
		}
		seen[key] = true
		if len(p.Competencies) == 0 {
			return fmt.Errorf("profiles: %q has no competencies", p.Specialty)
		}
		names := map[string]bool{}
		for _, comp := range p.Competencies {
			n := strings.ToLower(strings.TrimSpace(comp.Name))
			if n == "" {
				return fmt.Errorf("profiles: %q has a competency without a name", p.Specialty)
			}
			if names[n] {
				return fmt.Errorf("profiles: %q lists %q twice", p.Specialty, comp.Name)
			}
			names[n] = true
		}
	}
	return nil
}

// Get returns the profile for specialty, matched case-insensitively. An empty
// specialty selects the default profile.
func (c *Catalog) Get(specialty string) (Profile, error) {
	if strings.TrimSpace(specialty) == "" {
		specialty = c.Default
	}
	for _, p := range c.Profiles {
		if strings.EqualFold(strings.TrimSpace(p.Specialty), strings.TrimSpace(specialty)) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownSpecialty, specialty)
}

// Specialties lists profile names in file order.
func (c *Catalog) Specialties() []string {
	out := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		out = append(out, p.Specialty)
	}
	return out
}
