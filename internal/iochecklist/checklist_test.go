package iochecklist_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/internal/iochecklist"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/herbdata/herbario/pkg/errcode"
	"github.com/herbdata/herbario/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checklistCSV = `,accepted_full_name,family
0,Nothofagus obliqua,Nothofagaceae
1,Araucaria araucana,Araucariaceae
2,Quillaja saponaria,Quillajaceae
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoader(workDir, url string) *iochecklist.Loader {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptWorkDir(workDir)})
	src := sources.ChecklistSource{
		URL:        url,
		NameColumn: "accepted_full_name",
	}
	return iochecklist.New(src, cfg, quietLogger())
}

func setupWorkDir(t *testing.T) string {
	t.Helper()
	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(config.DataDir(workDir), 0755))
	return workDir
}

func TestDownload_WritesCache(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requests++
			fmt.Fprint(w, checklistCSV)
		}))
	defer server.Close()

	workDir := setupWorkDir(t)
	loader := newLoader(workDir, server.URL)

	assert.False(t, loader.Cached())
	require.NoError(t, loader.Download(context.Background()))
	assert.True(t, loader.Cached())

	// cached checklist is not fetched again
	require.NoError(t, loader.Download(context.Background()))
	assert.Equal(t, 1, requests)
}

func TestDownload_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
	defer server.Close()

	workDir := setupWorkDir(t)
	loader := newLoader(workDir, server.URL)

	err := loader.Download(context.Background())
	assert.Error(t, err)
	assert.False(t, loader.Cached())
}

func TestDownload_TruncatedBodyNotCached(t *testing.T) {
	// the handler promises more bytes than it writes; the server closes
	// the connection mid-body and the client sees an unexpected EOF
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "1000")
			fmt.Fprint(w, ",accepted_full_name\n0,Nothofagus")
		}))
	defer server.Close()

	workDir := setupWorkDir(t)
	loader := newLoader(workDir, server.URL)

	err := loader.Download(context.Background())
	require.Error(t, err)
	assert.False(t, loader.Cached(),
		"a truncated download must not count as cached")

	_, err = os.Stat(config.ChecklistPath(workDir))
	assert.True(t, os.IsNotExist(err),
		"no partial file is left at the cache path")
}

func TestAcceptedNames(t *testing.T) {
	workDir := setupWorkDir(t)
	require.NoError(t, os.WriteFile(
		config.ChecklistPath(workDir), []byte(checklistCSV), 0644))

	loader := newLoader(workDir, "http://unused.invalid")
	names, err := loader.AcceptedNames()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Nothofagus obliqua",
		"Araucaria araucana",
		"Quillaja saponaria",
	}, names)
}

func TestAcceptedNames_MissingChecklist(t *testing.T) {
	workDir := setupWorkDir(t)
	loader := newLoader(workDir, "http://unused.invalid")

	_, err := loader.AcceptedNames()
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.ChecklistMissingError, gnErr.Code)
}

func TestAcceptedNames_MissingColumn(t *testing.T) {
	workDir := setupWorkDir(t)
	require.NoError(t, os.WriteFile(
		config.ChecklistPath(workDir),
		[]byte("a,b\n1,2\n"), 0644))

	loader := newLoader(workDir, "http://unused.invalid")
	_, err := loader.AcceptedNames()
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ChecklistColumnError, gnErr.Code)
}
