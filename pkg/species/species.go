// Package species holds the domain types of the Herbario Digital dataset
// and the pure transformations applied to them: filtering collected records
// against an accepted-names checklist and flattening detail documents into
// simplified analysis-ready rows.
//
// The package performs no I/O.
package species

// Stub is a minimal species record from the paginated list endpoint.
// An ID of 0 means the API did not report one; such records are dropped
// before the detail fetch.
type Stub struct {
	ID             int    `json:"id"`
	ScientificName string `json:"scientific_name"`
}

// Region is one regional presence entry of a detail document.
type Region struct {
	Name string `json:"name"`
}

// Detail is the per-species document from the detail endpoint. Only the
// fields used downstream are decoded; the rest of the document is dropped.
type Detail struct {
	ID                int      `json:"id"`
	ScientificName    string   `json:"scientific_name"`
	Habit             string   `json:"habit"`
	Status            string   `json:"status"`
	ConservationState []string `json:"conservation_state"`
	Region            []Region `json:"region"`
}

// Simplified is one flat output row: scalar fields copied from the detail,
// a single conservation state label, and a 0/1 presence flag per canonical
// region.
type Simplified struct {
	ID                int            `json:"id"`
	ScientificName    string         `json:"scientific_name"`
	Habit             string         `json:"habit"`
	Status            string         `json:"status"`
	ConservationState string         `json:"conservation_state"`
	Regions           map[string]int `json:"regions"`
}
