package iosources

import (
	"os"

	"github.com/herbdata/herbario/pkg/config"
	"github.com/herbdata/herbario/pkg/sources"
	"gopkg.in/yaml.v3"
)

type iosources struct {
	homeDir string
}

// New creates a sources.yaml loader rooted at the user's config directory.
func New(homeDir string) sources.Sources {
	res := iosources{homeDir: homeDir}
	return &res
}

func (s *iosources) Load() (*sources.SourcesConfig, error) {
	sourcesPath := config.SourcesFilePath(s.homeDir)
	sourcesConfig, err := loadSourcesConfig(sourcesPath)
	if err != nil {
		return nil, SourcesConfigError(sourcesPath, err)
	}
	return sourcesConfig, nil
}

func loadSourcesConfig(path string) (*sources.SourcesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var res sources.SourcesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
