package iocheckpoint_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/herbdata/herbario/internal/iocheckpoint"
	"github.com/herbdata/herbario/pkg/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_CreatesDir(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "temp")

	store, err := iocheckpoint.New(tempDir, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, store)

	info, err := os.Stat(tempDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := iocheckpoint.New(t.TempDir(), quietLogger())
	require.NoError(t, err)

	stubs := []species.Stub{
		{ID: 1, ScientificName: "Nothofagus obliqua"},
		{ID: 2, ScientificName: "Araucaria araucana"},
	}

	path, err := store.Save(iocheckpoint.StageAll, stubs)
	require.NoError(t, err)
	assert.Equal(t, "herbario_species_all.json", filepath.Base(path))
	assert.True(t, store.Exists(iocheckpoint.StageAll))

	var loaded []species.Stub
	err = store.Load(iocheckpoint.StageAll, &loaded)
	require.NoError(t, err)
	assert.Equal(t, stubs, loaded)
}

func TestStore_StageFileNames(t *testing.T) {
	store, err := iocheckpoint.New(t.TempDir(), quietLogger())
	require.NoError(t, err)

	tests := []struct {
		stage iocheckpoint.Stage
		file  string
	}{
		{iocheckpoint.StageAll, "herbario_species_all.json"},
		{iocheckpoint.StageFiltered, "herbario_species_filtered.json"},
		{iocheckpoint.StageAccepted, "herbario_species_accepted.json"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.file, filepath.Base(store.Path(tt.stage)))
	}
}

func TestStore_ExistsWithoutSave(t *testing.T) {
	store, err := iocheckpoint.New(t.TempDir(), quietLogger())
	require.NoError(t, err)

	assert.False(t, store.Exists(iocheckpoint.StageFiltered))
}

// A payload the JSON encoder cannot serialize must not leave a
// checkpoint behind; the caller treats the stage as not checkpointed on
// the next run.
func TestStore_SaveUnserializable(t *testing.T) {
	store, err := iocheckpoint.New(t.TempDir(), quietLogger())
	require.NoError(t, err)

	path, err := store.Save(iocheckpoint.StageAll, make(chan int))
	assert.Error(t, err)
	assert.NotEmpty(t, path, "path is returned even on failure")
	assert.False(t, store.Exists(iocheckpoint.StageAll))
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := iocheckpoint.New(t.TempDir(), quietLogger())
	require.NoError(t, err)

	var out []species.Stub
	err = store.Load(iocheckpoint.StageAccepted, &out)
	assert.Error(t, err)
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	store, err := iocheckpoint.New(t.TempDir(), quietLogger())
	require.NoError(t, err)

	_, err = store.Save(iocheckpoint.StageAll,
		[]species.Stub{{ID: 1, ScientificName: "A"}})
	require.NoError(t, err)

	_, err = store.Save(iocheckpoint.StageAll,
		[]species.Stub{{ID: 2, ScientificName: "B"}})
	require.NoError(t, err)

	var loaded []species.Stub
	require.NoError(t, store.Load(iocheckpoint.StageAll, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].ID)
}
