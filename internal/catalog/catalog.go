// Package catalog loads the static university dataset, the recognized majors
// and the sample students used by the matcher.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/spigell/uni-matcher/internal/language"
)

//go:embed data/universities.yaml
var bundledUniversities []byte

//go:embed data/majors.yaml
var bundledMajors []byte

//go:embed data/samples.yaml
var bundledSamples []byte

// Catalog is immutable once loaded.
type Catalog struct {
	universities []University
	majors       []string
	samples      []Sample
}

// Sample is a predefined student used for quick runs.
type Sample struct {
	ID          string        `json:"id" mapstructure:"id"`
	Name        string        `json:"name" mapstructure:"name"`
	Description string        `json:"description" mapstructure:"description"`
	Profile     SampleProfile `json:"profile" mapstructure:"profile"`
}

type SampleProfile struct {
	GPA          float64       `json:"gpa" mapstructure:"gpa"`
	LanguageTest language.Test `json:"language_test" mapstructure:"language-test"`
	SAT          float64       `json:"sat" mapstructure:"sat"`
	Major        string        `json:"major" mapstructure:"major"`
}

type dataset struct {
	Universities []University `mapstructure:"universities"`
	Majors       []string     `mapstructure:"majors"`
	Samples      []Sample     `mapstructure:"samples"`
}

// Load reads the catalog from path. An empty path loads the bundled dataset.
// Majors and samples missing from an external file are taken from the bundle.
func Load(path string) (*Catalog, error) {
	bundled, err := loadBundled()
	if err != nil {
		return nil, err
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return bundled.build()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}

	external, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog file %q: %w", path, err)
	}

	if len(external.Majors) == 0 {
		external.Majors = bundled.Majors
	}
	if len(external.Samples) == 0 {
		external.Samples = bundled.Samples
	}

	return external.build()
}

// New builds a catalog from in-memory data, applying the same validation as Load.
func New(universities []University, majors []string) (*Catalog, error) {
	ds := &dataset{Universities: universities, Majors: majors}
	return ds.build()
}

func loadBundled() (*dataset, error) {
	ds := &dataset{}
	parts := []struct {
		name string
		raw  []byte
	}{
		{name: "universities", raw: bundledUniversities},
		{name: "majors", raw: bundledMajors},
		{name: "samples", raw: bundledSamples},
	}
	for _, p := range parts {
		part, err := decode(p.raw)
		if err != nil {
			return nil, fmt.Errorf("decoding bundled %s: %w", p.name, err)
		}
		ds.Universities = append(ds.Universities, part.Universities...)
		ds.Majors = append(ds.Majors, part.Majors...)
		ds.Samples = append(ds.Samples, part.Samples...)
	}
	return ds, nil
}

func decode(data []byte) (*dataset, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var ds dataset
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &ds,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return &ds, nil
}

func (ds *dataset) build() (*Catalog, error) {
	if len(ds.Universities) == 0 {
		return nil, fmt.Errorf("catalog has no universities")
	}

	seen := make(map[string]bool, len(ds.Universities))
	for i := range ds.Universities {
		u := &ds.Universities[i]
		if err := u.validate(); err != nil {
			return nil, err
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("duplicate university id: %s", u.ID)
		}
		seen[u.ID] = true
	}

	return &Catalog{
		universities: slices.Clone(ds.Universities),
		majors:       slices.Clone(ds.Majors),
		samples:      slices.Clone(ds.Samples),
	}, nil
}

func (c *Catalog) Len() int {
	return len(c.universities)
}

// Universities returns a copy in catalog order.
func (c *Catalog) Universities() []University {
	return slices.Clone(c.universities)
}

func (c *Catalog) FindByID(id string) *University {
	for i := range c.universities {
		if c.universities[i].ID == id {
			u := c.universities[i]
			return &u
		}
	}
	return nil
}

func (c *Catalog) Majors() []string {
	return slices.Clone(c.majors)
}

func (c *Catalog) IsMajor(name string) bool {
	return slices.Contains(c.majors, name)
}

func (c *Catalog) Samples() []Sample {
	return slices.Clone(c.samples)
}

func (c *Catalog) FindSample(id string) *Sample {
	for i := range c.samples {
		if c.samples[i].ID == id {
			s := c.samples[i]
			return &s
		}
	}
	return nil
}

// SampleIDs is used for prompts and error hints.
func (c *Catalog) SampleIDs() []string {
	ids := make([]string, 0, len(c.samples))
	for _, s := range c.samples {
		ids = append(ids, s.ID)
	}
	return ids
}
