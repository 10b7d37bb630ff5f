package config_test

import (
	"testing"

	"github.com/herbdata/herbario/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	require.NotNil(t, cfg)
	assert.Equal(t, 1, cfg.Fetch.StartPage)
	assert.Equal(t, 3, cfg.Fetch.PageRetries)
	assert.Equal(t, "en", cfg.Fetch.Language)
	assert.Equal(t, "file", cfg.Log.Destination)
	assert.True(t, cfg.CleanLogs)
	assert.False(t, cfg.CleanTemp)
	assert.Equal(t, ".", cfg.WorkDir)
}

func TestUpdate_Options(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptStartPage(40),
		config.OptLanguage("es"),
		config.OptCleanTemp(true),
		config.OptWorkDir("/tmp/herbario"),
	})

	assert.Equal(t, 40, cfg.Fetch.StartPage)
	assert.Equal(t, "es", cfg.Fetch.Language)
	assert.True(t, cfg.CleanTemp)
	assert.Equal(t, "/tmp/herbario", cfg.WorkDir)
}

func TestUpdate_RejectsInvalidValues(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptStartPage(0),
		config.OptLanguage("  "),
		config.OptLogLevel("noisy"),
	})

	// invalid values leave the defaults intact
	assert.Equal(t, 1, cfg.Fetch.StartPage)
	assert.Equal(t, "en", cfg.Fetch.Language)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestToOptions_RoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptStartPage(7),
		config.OptLogFormat("json"),
		config.OptCleanLogs(false),
		config.OptWorkDir("/data"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, 7, clone.Fetch.StartPage)
	assert.Equal(t, "json", clone.Log.Format)
	assert.False(t, clone.CleanLogs)
	// runtime-only field is not part of ToOptions
	assert.Equal(t, ".", clone.WorkDir)
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "work/data", config.DataDir("work"))
	assert.Equal(t, "work/data/temp", config.TempDir("work"))
	assert.Equal(t, "work/errors", config.ErrorsDir("work"))
	assert.Equal(t, "work/data/species_names.csv", config.ChecklistPath("work"))
	assert.Equal(t, "work/data/herbario_species.csv", config.TablePath("work"))
}
