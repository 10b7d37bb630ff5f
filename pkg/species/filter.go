package species

// FilterByNames keeps only stubs whose scientific name appears verbatim in
// the accepted-names list. Matching is exact and case-sensitive, input
// order is preserved, and stubs without a name are dropped.
func FilterByNames(stubs []Stub, acceptedNames []string) []Stub {
	accepted := make(map[string]struct{}, len(acceptedNames))
	for _, name := range acceptedNames {
		accepted[name] = struct{}{}
	}

	res := make([]Stub, 0, len(stubs))
	for _, stub := range stubs {
		if stub.ScientificName == "" {
			continue
		}
		if _, ok := accepted[stub.ScientificName]; ok {
			res = append(res, stub)
		}
	}
	return res
}
