// herbario is a batch ETL pipeline for the Herbario Digital public API:
// it cross-references the species catalog against the Rasgos-CL checklist
// of accepted names and writes a simplified CSV dataset.
package main

import (
	"github.com/herbdata/herbario/cmd"
)

func main() {
	cmd.Execute()
}
