// Package iofetch talks to the Herbario Digital API: it walks the
// paginated species list and downloads per-species detail documents.
//
// The two loops apply different failure policies. Page failures signal
// end-of-data or a total outage, so the collection aborts and keeps what
// it has. Detail failures are independent per id, so a bad id is skipped
// and the loop moves on; only transport or decode failures abort.
package iofetch

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/herbdata/herbario/pkg/config"
	"github.com/herbdata/herbario/pkg/sources"
)

// Client fetches species data from the configured endpoints.
type Client struct {
	http        *http.Client
	listURL     string
	detailURL   string
	language    string
	startPage   int
	pageRetries int
	log         *slog.Logger
}

// New creates a Client for the given endpoints. The logger receives
// diagnostic entries for every skipped or aborted request.
func New(
	src sources.SpeciesSource,
	cfg *config.Config,
	log *slog.Logger,
) *Client {
	// the species id is appended as a path segment
	detailURL := src.DetailURL
	if !strings.HasSuffix(detailURL, "/") {
		detailURL += "/"
	}

	res := &Client{
		http: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSec) * time.Second,
		},
		listURL:     src.ListURL,
		detailURL:   detailURL,
		language:    cfg.Fetch.Language,
		startPage:   cfg.Fetch.StartPage,
		pageRetries: cfg.Fetch.PageRetries,
		log:         log,
	}
	return res
}
