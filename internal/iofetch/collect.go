package iofetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/species"
)

// listPage is the decoded shape of one species list page. Fields of the
// result entries beyond id and scientific_name are dropped.
type listPage struct {
	Results []species.Stub `json:"results"`
}

// Collect walks the species list page by page, starting at the configured
// start page, and accumulates stubs until a page comes back empty.
//
// An empty or absent results array terminates the walk normally: the API
// reports no total page count, so running off the end is the expected
// exit. A transport or decode failure aborts the walk; whatever was
// accumulated is returned together with the error. A non-200 page is
// retried up to the configured number of attempts, then the walk aborts
// with partial results.
func (c *Client) Collect(ctx context.Context) ([]species.Stub, error) {
	gn.Info("Retrieving species list")

	var stubs []species.Stub
	page := c.startPage
	attempts := 0

	for {
		pageURL, err := c.pageURL(page)
		if err != nil {
			return stubs, ParseURLError(c.listURL, err)
		}

		gn.Info("Retrieving page %d...", page)
		body, status, err := c.get(ctx, pageURL)
		if err != nil {
			c.log.Error("species list request failed",
				"page", page, "error", err)
			return stubs, TransportError(pageURL, err)
		}

		if status != http.StatusOK {
			attempts++
			c.log.Error("non-ok status for species list page",
				"page", page, "status", status, "attempt", attempts)
			if attempts >= c.pageRetries {
				gn.Warn("Giving up on page %d after %d attempts", page, attempts)
				return stubs, RemoteStatusError(pageURL, status)
			}
			continue
		}
		attempts = 0

		var decoded listPage
		if err = json.Unmarshal(body, &decoded); err != nil {
			c.log.Error("cannot decode species list page",
				"page", page, "error", err)
			return stubs, DecodeError(pageURL, err)
		}

		if len(decoded.Results) == 0 {
			gn.Info("No more data, closing the species list")
			return stubs, nil
		}

		stubs = append(stubs, decoded.Results...)
		page++
	}
}

// pageURL appends the page query parameter to the list endpoint.
func (c *Client) pageURL(page int) (string, error) {
	u, err := url.Parse(c.listURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// get issues one context-bound GET request and reads the whole body.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("reading response body: %w", err)
	}
	return body, res.StatusCode, nil
}
