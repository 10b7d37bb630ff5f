package herbario

import (
	"context"
)

// Runner executes the species ETL pipeline end to end: collect the
// paginated species list, filter it against the accepted-names checklist,
// download per-species details, and write the simplified table.
//
// A run resumes from the most advanced stage checkpoint found on disk and
// never re-fetches what a previous run already persisted. Network and
// decode failures degrade the result to a partial dataset instead of
// failing the run; only a missing reference checklist and filesystem
// write failures surface as errors.
type Runner interface {
	// Run executes or resumes the pipeline and returns the path of the
	// final simplified table.
	Run(ctx context.Context) (string, error)
}
