package iopipeline

import (
	"testing"

	"github.com/herbdata/herbario/internal/iocheckpoint"
	"github.com/stretchr/testify/assert"
)

func existing(stages ...iocheckpoint.Stage) func(iocheckpoint.Stage) bool {
	set := make(map[iocheckpoint.Stage]bool, len(stages))
	for _, s := range stages {
		set[s] = true
	}
	return func(s iocheckpoint.Stage) bool { return set[s] }
}

func TestResolveResume(t *testing.T) {
	tests := []struct {
		name        string
		tableExists bool
		checkpoints []iocheckpoint.Stage
		want        resumePoint
	}{
		{
			name: "nothing on disk starts from scratch",
			want: resumeStart,
		},
		{
			name:        "collected list resumes before filtering",
			checkpoints: []iocheckpoint.Stage{iocheckpoint.StageAll},
			want:        resumeAllStubs,
		},
		{
			name: "filtered list resumes before detail fetch",
			checkpoints: []iocheckpoint.Stage{
				iocheckpoint.StageAll, iocheckpoint.StageFiltered,
			},
			want: resumeFilteredStubs,
		},
		{
			name: "accepted details resume before simplify",
			checkpoints: []iocheckpoint.Stage{
				iocheckpoint.StageAll,
				iocheckpoint.StageFiltered,
				iocheckpoint.StageAccepted,
			},
			want: resumeAcceptedDetails,
		},
		{
			name:        "final table wins over everything",
			tableExists: true,
			checkpoints: []iocheckpoint.Stage{
				iocheckpoint.StageAll,
				iocheckpoint.StageFiltered,
				iocheckpoint.StageAccepted,
			},
			want: resumeFinalTable,
		},
		{
			name: "a later checkpoint shadows missing earlier ones",
			checkpoints: []iocheckpoint.Stage{
				iocheckpoint.StageAccepted,
			},
			want: resumeAcceptedDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveResume(tt.tableExists, existing(tt.checkpoints...))
			assert.Equal(t, tt.want, got)
		})
	}
}
