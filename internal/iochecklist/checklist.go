// Package iochecklist materializes and reads the reference checklist of
// accepted species names. The checklist is a remotely published CSV,
// downloaded once and cached at data/species_names.csv.
package iochecklist

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/herbdata/herbario/pkg/sources"
)

// Loader downloads and reads the accepted-names checklist.
type Loader struct {
	path   string
	url    string
	column string
	http   *http.Client
	log    *slog.Logger
}

// New creates a Loader. The cache path is derived from the working
// directory.
func New(
	src sources.ChecklistSource,
	cfg *config.Config,
	log *slog.Logger,
) *Loader {
	res := &Loader{
		path:   config.ChecklistPath(cfg.WorkDir),
		url:    src.URL,
		column: src.NameColumn,
		http: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSec) * time.Second,
		},
		log: log,
	}
	return res
}

// Cached reports whether the checklist file has been materialized.
func (l *Loader) Cached() bool {
	info, err := os.Stat(l.path)
	return err == nil && !info.IsDir()
}

// Download fetches the checklist and writes it to the cache path. An
// already cached checklist is left alone.
func (l *Loader) Download(ctx context.Context) error {
	if l.Cached() {
		return nil
	}
	gn.Info("Downloading reference checklist")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return DownloadError(l.url, err)
	}
	res, err := l.http.Do(req)
	if err != nil {
		l.log.Error("checklist download failed", "url", l.url, "error", err)
		return DownloadError(l.url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		l.log.Error("non-ok status for checklist download",
			"url", l.url, "status", res.StatusCode)
		return StatusError(l.url, res.StatusCode)
	}

	// written through a temp file so a failed transfer never
	// materializes a truncated cache
	tmp := l.path + ".part"
	file, err := os.Create(tmp)
	if err != nil {
		return WriteError(tmp, err)
	}

	if _, err = io.Copy(file, res.Body); err != nil {
		file.Close()
		os.Remove(tmp)
		l.log.Error("cannot write checklist", "path", tmp, "error", err)
		return WriteError(tmp, err)
	}
	if err = file.Close(); err != nil {
		os.Remove(tmp)
		return WriteError(tmp, err)
	}

	if err = os.Rename(tmp, l.path); err != nil {
		os.Remove(tmp)
		return WriteError(l.path, err)
	}
	return nil
}

// AcceptedNames reads the canonical-name column of the cached checklist.
// It fails with a missing-prerequisite error when the checklist has not
// been downloaded yet.
func (l *Loader) AcceptedNames() ([]string, error) {
	gn.Info("Reading accepted species names from the checklist")

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, MissingError(l.path)
		}
		return nil, ReadError(l.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, ReadError(l.path, err)
	}

	col := -1
	for i, name := range header {
		if name == l.column {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, ColumnError(l.path, l.column)
	}

	var names []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadError(l.path, err)
		}
		if name := record[col]; name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
