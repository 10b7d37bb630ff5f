package species

// ConservationStates is the fixed severity table, ordered from least
// severe ("Not Evaluated") to most severe ("Extinct"). The table position
// is the sort key for state selection and is never mutated.
var ConservationStates = []string{
	"Not Evaluated (NE)",
	"Data Deficient (DD)",
	"Least Concern (LC)",
	"Conservation Dependent (CD)",
	"Near Threatened (NT)",
	"Almost Threatened (NT)",
	"Vulnerable (VU)",
	"Endangered (EN)",
	"Critically Endangered (CR)",
	"Extinct in the Wild (EW)",
	"Extinct (EX)",
}

// DefaultConservationState is reported when a detail document carries no
// recognized conservation state.
var DefaultConservationState = ConservationStates[0]

var stateRank = func() map[string]int {
	m := make(map[string]int, len(ConservationStates))
	for i, s := range ConservationStates {
		// the duplicate NT label keeps its first position
		if _, ok := m[s]; !ok {
			m[s] = i
		}
	}
	return m
}()

// SelectConservationState picks the single reported label with the lowest
// position in the severity table. Labels missing from the table are
// ignored; if none remain the default state is returned.
func SelectConservationState(states []string) string {
	best := -1
	for _, s := range states {
		rank, ok := stateRank[s]
		if !ok {
			continue
		}
		if best == -1 || rank < best {
			best = rank
		}
	}
	if best == -1 {
		return DefaultConservationState
	}
	return ConservationStates[best]
}

// KnownConservationState reports whether a label is in the severity table.
func KnownConservationState(s string) bool {
	_, ok := stateRank[s]
	return ok
}
