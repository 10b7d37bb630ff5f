package iopipeline

import (
	"os"

	"github.com/herbdata/herbario/internal/iocheckpoint"
)

// resumePoint is the stage whose persisted artifact a run starts from.
// Higher values are more advanced: everything upstream of the point is
// skipped and loaded from disk instead of recomputed.
type resumePoint int

const (
	// resumeStart runs the full sequence, nothing is reused.
	resumeStart resumePoint = iota
	// resumeAllStubs reuses the collected species list.
	resumeAllStubs
	// resumeFilteredStubs reuses the checklist-filtered list.
	resumeFilteredStubs
	// resumeAcceptedDetails reuses the downloaded detail documents.
	resumeAcceptedDetails
	// resumeFinalTable reuses the final simplified table.
	resumeFinalTable
)

// resolveResume probes artifacts most-advanced first and returns the
// first point whose artifact exists.
func resolveResume(
	tableExists bool,
	checkpointExists func(iocheckpoint.Stage) bool,
) resumePoint {
	switch {
	case tableExists:
		return resumeFinalTable
	case checkpointExists(iocheckpoint.StageAccepted):
		return resumeAcceptedDetails
	case checkpointExists(iocheckpoint.StageFiltered):
		return resumeFilteredStubs
	case checkpointExists(iocheckpoint.StageAll):
		return resumeAllStubs
	default:
		return resumeStart
	}
}

func (p *pipeline) resumePoint() resumePoint {
	info, err := os.Stat(p.tablePath)
	tableExists := err == nil && !info.IsDir()
	return resolveResume(tableExists, p.store.Exists)
}
