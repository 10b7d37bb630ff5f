// Package sources defines the schema for sources.yaml, which names the
// remote collaborators of the pipeline: the paginated species list
// endpoint, the per-species detail endpoint, and the reference checklist
// of accepted names.
package sources

import (
	"fmt"
	"strings"
)

// Sources loads the sources.yaml configuration.
type Sources interface {
	Load() (*SourcesConfig, error)
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// Species describes the Herbario Digital API endpoints.
	Species SpeciesSource `yaml:"species"`

	// Checklist describes the remotely hosted accepted-names table.
	Checklist ChecklistSource `yaml:"checklist"`
}

// SpeciesSource holds the species API endpoints.
type SpeciesSource struct {
	// ListURL is the paginated species list endpoint. The page number is
	// appended as a `page` query parameter.
	ListURL string `yaml:"list_url"`

	// DetailURL is the per-species endpoint. The species id is appended
	// as a path segment, the language as a `lang` query parameter.
	DetailURL string `yaml:"detail_url"`
}

// ChecklistSource holds the reference checklist location.
type ChecklistSource struct {
	// URL points at the published CSV of accepted names.
	URL string `yaml:"url"`

	// NameColumn is the CSV column holding the canonical scientific
	// names. Defaults to "accepted_full_name".
	NameColumn string `yaml:"name_column"`
}

// Validate checks that every required field is present and fills in
// defaults for optional ones.
func (c *SourcesConfig) Validate() error {
	var missing []string
	if c.Species.ListURL == "" {
		missing = append(missing, "species.list_url")
	}
	if c.Species.DetailURL == "" {
		missing = append(missing, "species.detail_url")
	}
	if c.Checklist.URL == "" {
		missing = append(missing, "checklist.url")
	}
	if len(missing) > 0 {
		return fmt.Errorf(
			"sources config is missing required fields: %s",
			strings.Join(missing, ", "),
		)
	}

	if c.Checklist.NameColumn == "" {
		c.Checklist.NameColumn = "accepted_full_name"
	}
	return nil
}
