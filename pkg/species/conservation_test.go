package species_test

import (
	"testing"

	"github.com/herbdata/herbario/pkg/species"
	"github.com/stretchr/testify/assert"
)

func TestSelectConservationState(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		want   string
	}{
		{
			name:   "no reported states falls back to default",
			states: nil,
			want:   "Not Evaluated (NE)",
		},
		{
			name:   "single state is returned as is",
			states: []string{"Endangered (EN)"},
			want:   "Endangered (EN)",
		},
		{
			name:   "lowest table position wins",
			states: []string{"Vulnerable (VU)", "Endangered (EN)"},
			want:   "Vulnerable (VU)",
		},
		{
			name:   "order of reported states does not matter",
			states: []string{"Endangered (EN)", "Vulnerable (VU)"},
			want:   "Vulnerable (VU)",
		},
		{
			name:   "least concern beats vulnerable",
			states: []string{"Vulnerable (VU)", "Least Concern (LC)"},
			want:   "Least Concern (LC)",
		},
		{
			name:   "unknown labels are ignored",
			states: []string{"Mostly Harmless", "Extinct (EX)"},
			want:   "Extinct (EX)",
		},
		{
			name:   "only unknown labels falls back to default",
			states: []string{"Mostly Harmless"},
			want:   "Not Evaluated (NE)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := species.SelectConservationState(tt.states)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConservationStatesTable(t *testing.T) {
	assert.Len(t, species.ConservationStates, 11)
	assert.Equal(t, "Not Evaluated (NE)", species.ConservationStates[0])
	assert.Equal(t, "Extinct (EX)", species.ConservationStates[10])
	assert.Equal(t, species.ConservationStates[0],
		species.DefaultConservationState)
}

func TestKnownConservationState(t *testing.T) {
	assert.True(t, species.KnownConservationState("Vulnerable (VU)"))
	assert.False(t, species.KnownConservationState("vulnerable (vu)"))
	assert.False(t, species.KnownConservationState(""))
}
