package species

import (
	"strconv"
)

// Simplify flattens detail documents into analysis-ready rows. One row per
// detail, input order preserved. Scalar fields are copied verbatim, the
// conservation state collapses to the single label selected by
// SelectConservationState, and regional presence becomes one 0/1 value per
// canonical region.
func Simplify(details []Detail) []Simplified {
	res := make([]Simplified, 0, len(details))
	for _, d := range details {
		row := Simplified{
			ID:                d.ID,
			ScientificName:    d.ScientificName,
			Habit:             d.Habit,
			Status:            d.Status,
			ConservationState: SelectConservationState(d.ConservationState),
			Regions:           make(map[string]int, len(Regions)),
		}

		present := make(map[string]struct{}, len(d.Region))
		for _, r := range d.Region {
			present[r.Name] = struct{}{}
		}
		for _, reg := range Regions {
			if _, ok := present[reg.Raw]; ok {
				row.Regions[reg.Canonical] = 1
			} else {
				row.Regions[reg.Canonical] = 0
			}
		}

		res = append(res, row)
	}
	return res
}

// Header returns the column names of the final table: the scalar columns
// followed by the canonical regions in their fixed order.
func Header() []string {
	res := []string{"id", "scientific_name", "habit", "status", "conservation_state"}
	return append(res, RegionColumns()...)
}

// Row renders one simplified record in Header() column order.
func (s Simplified) Row() []string {
	res := []string{
		strconv.Itoa(s.ID),
		s.ScientificName,
		s.Habit,
		s.Status,
		s.ConservationState,
	}
	for _, reg := range Regions {
		res = append(res, strconv.Itoa(s.Regions[reg.Canonical]))
	}
	return res
}
