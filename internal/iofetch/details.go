package iofetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/species"
)

// Details downloads the full document for each stub, in input order.
//
// Stubs without an id are logged and skipped. A non-success status for one
// id skips that id only. A transport or decode failure aborts the loop;
// the details fetched so far are returned together with the error.
func (c *Client) Details(
	ctx context.Context,
	stubs []species.Stub,
) ([]species.Detail, error) {
	gn.Info("Retrieving %s accepted species", humanize.Comma(int64(len(stubs))))

	details := make([]species.Detail, 0, len(stubs))
	bar := newProgressBar(len(stubs), "species")
	defer bar.Finish()

	for _, stub := range stubs {
		if stub.ID == 0 {
			c.log.Error("no id available for species",
				"scientific_name", stub.ScientificName)
			bar.Increment()
			continue
		}

		detailURL := fmt.Sprintf(
			"%s%d/?format=json&lang=%s", c.detailURL, stub.ID, c.language,
		)

		body, status, err := c.get(ctx, detailURL)
		if err != nil {
			c.log.Error("species detail request failed",
				"id", stub.ID, "error", err)
			return details, TransportError(detailURL, err)
		}

		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			c.log.Error("non-ok status for species detail",
				"id", stub.ID, "status", status)
			bar.Increment()
			continue
		}

		var detail species.Detail
		if err = json.Unmarshal(body, &detail); err != nil {
			c.log.Error("cannot decode species detail",
				"id", stub.ID, "error", err)
			return details, DecodeError(detailURL, err)
		}

		details = append(details, detail)
		bar.Increment()
	}

	return details, nil
}
